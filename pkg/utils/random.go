package utils

import "math/rand"

// Rand is the subset of math/rand the schedule engine draws from. Injecting it
// lets tests seed a deterministic source; *rand.Rand satisfies the interface.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// GlobalRand returns the process-wide source. The top-level math/rand
// functions are internally locked, so it is safe under concurrent requests.
func GlobalRand() Rand { return globalRand{} }
