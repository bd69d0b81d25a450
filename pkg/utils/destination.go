package utils

import "strings"

// SplitDestination parses a "Country:City" destination. Only the first colon
// separates; without one the whole string is the city and country is empty.
func SplitDestination(destination string) (city string, country string) {
	if i := strings.Index(destination, ":"); i >= 0 {
		return strings.TrimSpace(destination[i+1:]), strings.TrimSpace(destination[:i])
	}
	return destination, ""
}
