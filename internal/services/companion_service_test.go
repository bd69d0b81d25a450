package services_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triply/internal/services"
)

func newCompanionService(seed int64) services.CompanionServiceInterface {
	return services.NewCompanionService(rand.New(rand.NewSource(seed)))
}

func TestCompanionService_ReturnsRequestedCount(t *testing.T) {
	svc := newCompanionService(1)

	assert.Len(t, svc.SuggestCompanions(9), 9)
	assert.Len(t, svc.SuggestCompanions(1), 1)
	assert.Empty(t, svc.SuggestCompanions(0))
}

func TestCompanionService_ProfilesAreFullyPopulated(t *testing.T) {
	svc := newCompanionService(2)

	for _, profile := range svc.SuggestCompanions(30) {
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.Country)
		assert.NotEmpty(t, profile.Interest)
		assert.NotEmpty(t, profile.Bio)
		assert.Contains(t, []string{"Male", "Female"}, profile.Gender)
		assert.GreaterOrEqual(t, profile.Age, 22)
		assert.LessOrEqual(t, profile.Age, 45)
		assert.True(t, strings.HasPrefix(profile.Avatar, "https://i.pravatar.cc/150?img="))
	}
}

func TestCompanionService_GenderMatchesNamePool(t *testing.T) {
	svc := newCompanionService(3)

	femaleNames := map[string]bool{
		"Emily": true, "Sarah": true, "Rachel": true, "Sharon": true,
		"Sophia": true, "Katy": true, "Emma": true, "Christina": true,
		"Olivia": true, "Alia": true, "Maya": true, "Aria": true,
		"Jessie": true, "Isabella": true, "Gina": true, "Charlotte": true,
	}

	profiles := svc.SuggestCompanions(40)
	require.NotEmpty(t, profiles)
	for _, profile := range profiles {
		if profile.Gender == "Female" {
			assert.True(t, femaleNames[profile.Name], "female profile drew name %q", profile.Name)
		} else {
			assert.False(t, femaleNames[profile.Name], "male profile drew name %q", profile.Name)
		}
	}
}
