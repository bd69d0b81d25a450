package services

import (
	"fmt"

	"triply/internal/models/response_models"
	"triply/pkg/utils"
)

type CompanionServiceInterface interface {
	SuggestCompanions(count int) []response_models.CompanionProfile
}

// CompanionService synthesizes random travel-companion profiles for solo
// travelers. Pure profile generation, no scheduling logic.
type CompanionService struct {
	rng utils.Rand
}

func NewCompanionService(rng utils.Rand) CompanionServiceInterface {
	return &CompanionService{rng: rng}
}

var (
	companionMaleNames = []string{
		"Jake", "David", "Ron", "John", "Mark", "Liam", "Steven", "Noah",
		"Josh", "Ethan", "Jose", "Nick", "James", "Chris", "Lucas", "Francis",
	}
	companionFemaleNames = []string{
		"Emily", "Sarah", "Rachel", "Sharon", "Sophia", "Katy", "Emma", "Christina",
		"Olivia", "Alia", "Maya", "Aria", "Jessie", "Isabella", "Gina", "Charlotte",
	}
	companionCountries = []string{
		"USA", "Canada", "Germany", "Brazil", "Japan", "Israel", "France",
		"India", "UK", "Australia", "Spain", "Italy", "Netherlands", "Sweden", "Norway",
	}
	companionInterests = []string{
		"Adventure", "Foodie", "Nightlife", "Culture", "Relaxation",
		"Photography", "Hiking", "Music", "Art", "Beach", "History",
	}
	companionBios = []string{
		"Always down for a last-minute city tour and exploring hidden gems!",
		"Looking for coffee shops and local experiences.",
		"Nightlife enthusiast—love bars, live music, and meeting new people.",
		"Museum hopper and local cuisine explorer. Food is my passion!",
		"Beach days and sunrise hikes. Nature lover at heart.",
		"Street food and photo walks. Capturing moments everywhere I go.",
		"Solo traveler looking for adventure buddies. Let's explore together!",
		"Love trying new restaurants and discovering local culture.",
	}
)

func (s *CompanionService) SuggestCompanions(count int) []response_models.CompanionProfile {
	profiles := make([]response_models.CompanionProfile, 0, count)
	for i := 0; i < count; i++ {
		gender := "Male"
		names := companionMaleNames
		if s.rng.Intn(2) == 1 {
			gender = "Female"
			names = companionFemaleNames
		}

		profiles = append(profiles, response_models.CompanionProfile{
			Gender:   gender,
			Name:     names[s.rng.Intn(len(names))],
			Country:  companionCountries[s.rng.Intn(len(companionCountries))],
			Age:      22 + s.rng.Intn(24),
			Interest: companionInterests[s.rng.Intn(len(companionInterests))],
			Bio:      companionBios[s.rng.Intn(len(companionBios))],
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?img=%d", 1+s.rng.Intn(60)),
		})
	}
	return profiles
}
