package services

import (
	"fmt"
	"time"

	"triply/internal/models/response_models"
	"triply/pkg/utils"
)

type FallbackServiceInterface interface {
	GenerateSchedule(city string, start time.Time, numDays int, preferences []string, slots []string) []response_models.DaySchedule
}

// FallbackService builds day plans from a fixed preference→template table
// when the AI path is unavailable. Structure is deterministic; which
// templates land on which day is randomized.
type FallbackService struct {
	rng      utils.Rand
	timeline TimelineBuilderInterface
}

func NewFallbackService(rng utils.Rand, timeline TimelineBuilderInterface) FallbackServiceInterface {
	return &FallbackService{
		rng:      rng,
		timeline: timeline,
	}
}

func activityTemplates(city string) map[string][]string {
	return map[string][]string{
		"Popular Attractions": {
			fmt.Sprintf("Visit famous landmarks in %s", city),
			fmt.Sprintf("Explore %s's historic center", city),
			fmt.Sprintf("Take a guided tour of %s", city),
			fmt.Sprintf("Visit museums and cultural sites in %s", city),
			fmt.Sprintf("See the main tourist attractions in %s", city),
			fmt.Sprintf("Explore %s's architecture", city),
		},
		"Bars": {
			fmt.Sprintf("Evening drinks at rooftop bar in %s", city),
			fmt.Sprintf("Local pub crawl in %s", city),
			fmt.Sprintf("Cocktail tasting at trendy bars in %s", city),
			fmt.Sprintf("Live music venue in %s", city),
			fmt.Sprintf("Wine bar exploration in %s", city),
			fmt.Sprintf("Nightlife district tour in %s", city),
		},
		"Restaurants": {
			fmt.Sprintf("Traditional local cuisine dinner in %s", city),
			fmt.Sprintf("Street food market tour in %s", city),
			fmt.Sprintf("Fine dining experience in %s", city),
			fmt.Sprintf("Breakfast at famous local spot in %s", city),
			fmt.Sprintf("Food tour of local specialties in %s", city),
			fmt.Sprintf("Cooking class experience in %s", city),
		},
		"Beaches": {
			fmt.Sprintf("Beach day and relaxation in %s", city),
			fmt.Sprintf("Water sports activities in %s", city),
			fmt.Sprintf("Sunset beach walk in %s", city),
			fmt.Sprintf("Beachside dining in %s", city),
		},
		"Shopping": {
			fmt.Sprintf("Local market shopping in %s", city),
			fmt.Sprintf("Boutique store exploration in %s", city),
			fmt.Sprintf("Souvenir hunting in %s", city),
			fmt.Sprintf("Shopping district tour in %s", city),
		},
		"Nature": {
			fmt.Sprintf("Hiking trail adventure near %s", city),
			fmt.Sprintf("Nature park visit near %s", city),
			fmt.Sprintf("Scenic viewpoint exploration in %s", city),
			fmt.Sprintf("Outdoor activities in %s", city),
		},
	}
}

// GenerateSchedule produces one DaySchedule per day, shaped identically to
// the AI path so downstream consumers cannot tell which path ran.
func (f *FallbackService) GenerateSchedule(city string, start time.Time, numDays int, preferences []string, slots []string) []response_models.DaySchedule {
	templates := activityTemplates(city)

	schedule := make([]response_models.DaySchedule, 0, numDays)
	for dayNum := 1; dayNum <= numDays; dayNum++ {
		date := start.AddDate(0, 0, dayNum-1)
		day := response_models.DaySchedule{
			Day:           dayNum,
			Date:          date.Format("2006-01-02"),
			DateFormatted: date.Format("January 02, 2006"),
		}

		for _, pref := range preferences {
			candidates, ok := templates[pref]
			if !ok {
				continue
			}
			// Two picks only early in the trip; later days stay lighter.
			numActivities := 1
			if dayNum <= 3 {
				numActivities = 1 + f.rng.Intn(2)
			}
			if numActivities > len(candidates) {
				numActivities = len(candidates)
			}
			for i := 0; i < numActivities; i++ {
				activity := candidates[f.rng.Intn(len(candidates))]
				if !containsString(day.Activities, activity) {
					day.Activities = append(day.Activities, activity)
				}
			}
		}

		if len(day.Activities) == 0 {
			day.Activities = []string{
				fmt.Sprintf("Explore %s", city),
				fmt.Sprintf("Local experience in %s", city),
			}
		}

		f.timeline.AttachTimeline(&day, city, slots, preferences)
		schedule = append(schedule, day)
	}

	return schedule
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
