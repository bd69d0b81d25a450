package services

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"triply/internal/models/response_models"
	"triply/pkg/utils"
)

const ratingSource = "Google Maps"

type TimelineBuilderInterface interface {
	AttachTimeline(day *response_models.DaySchedule, city string, slots []string, preferences []string)
}

// TimelineBuilder maps a day's activity names onto its time slots: meal
// windows claim their slot first, everything else cycles through the
// activity list.
type TimelineBuilder struct {
	cfg utils.ScheduleConfig
	rng utils.Rand
}

func NewTimelineBuilder(cfg utils.ScheduleConfig, rng utils.Rand) TimelineBuilderInterface {
	return &TimelineBuilder{
		cfg: cfg,
		rng: rng,
	}
}

// mealTracker holds the per-day placement flags. A meal can be claimed by at
// most one slot per day.
type mealTracker struct {
	breakfast bool
	lunch     bool
	dinner    bool
}

// claimMeal resolves a slot hour against the meal windows in breakfast →
// lunch → dinner order. The first unplaced match is marked placed; later
// slots in the same window fall through to regular activities.
func (b *TimelineBuilder) claimMeal(hour int, placed *mealTracker) string {
	switch {
	case b.cfg.BreakfastWindow.Contains(hour) && !placed.breakfast:
		placed.breakfast = true
		return "breakfast"
	case b.cfg.LunchWindow.Contains(hour) && !placed.lunch:
		placed.lunch = true
		return "lunch"
	case b.cfg.DinnerWindow.Contains(hour) && !placed.dinner:
		placed.dinner = true
		return "dinner"
	}
	return ""
}

type activityDetails struct {
	Title       string
	Description string
	Link        string
	Rating      float64
	Reviews     int
	Category    string
}

func (b *TimelineBuilder) describeActivity(activityName, city, category string) activityDetails {
	if category == "" {
		category = "General"
	}
	span := b.cfg.RatingMax - b.cfg.RatingMin
	return activityDetails{
		Title: activityName,
		Description: fmt.Sprintf(
			"Experience %s in %s. A highly rated %s highlight recommended for curious travelers.",
			activityName, city, strings.ToLower(category)),
		Link:     mapsSearchLink(activityName, city),
		Rating:   math.Round((b.cfg.RatingMin+b.rng.Float64()*span)*10) / 10,
		Reviews:  b.cfg.ReviewsMin + b.rng.Intn(b.cfg.ReviewsMax-b.cfg.ReviewsMin+1),
		Category: category,
	}
}

// describeMeal overrides the generic copy with fixed, meal-specific copy.
// Rating, reviews, and the link builder stay shared with describeActivity so
// meal entries render the same way downstream.
func (b *TimelineBuilder) describeMeal(meal, city string) activityDetails {
	var title, description, category string
	switch meal {
	case "breakfast":
		title = fmt.Sprintf("Gourmet breakfast in %s", city)
		description = fmt.Sprintf("Start the morning with freshly baked pastries and local coffee culture in %s.", city)
		category = "Breakfast"
	case "lunch":
		title = fmt.Sprintf("Local lunch experience in %s", city)
		description = fmt.Sprintf("Taste the authentic midday flavors of %s, from street food to cozy bistros.", city)
		category = "Lunch"
	case "dinner":
		title = fmt.Sprintf("Signature dinner in %s", city)
		description = fmt.Sprintf("End your day with a memorable dining experience featuring %s's culinary classics.", city)
		category = "Dinner"
	}

	details := b.describeActivity(title, city, category)
	details.Description = description
	return details
}

// AttachTimeline derives day.Timeline from the slot sequence. An empty
// activity list is replaced by two generic placeholders. The activity cycle
// and the preference cycle advance on the same counter but wrap over
// independently sized lists; the pairing is positional, not semantic.
func (b *TimelineBuilder) AttachTimeline(day *response_models.DaySchedule, city string, slots []string, preferences []string) {
	activities := day.Activities
	if len(activities) == 0 {
		activities = []string{
			fmt.Sprintf("Explore %s", city),
			fmt.Sprintf("Local experience in %s", city),
		}
	}

	placed := mealTracker{}
	timeline := make([]response_models.TimelineEntry, 0, len(slots))
	activityIndex := 0

	for _, slot := range slots {
		var details activityDetails
		if meal := b.claimMeal(utils.SlotHour(slot), &placed); meal != "" {
			details = b.describeMeal(meal, city)
		} else {
			details = b.describeActivity(activities[activityIndex%len(activities)], city, "")
			if len(preferences) > 0 {
				details.Category = preferences[activityIndex%len(preferences)]
			}
			activityIndex++
		}

		timeline = append(timeline, response_models.TimelineEntry{
			ID:           fmt.Sprintf("%d-%s", day.Day, entrySuffix()),
			Time:         slot,
			Title:        details.Title,
			Description:  details.Description,
			Link:         details.Link,
			Rating:       details.Rating,
			Reviews:      details.Reviews,
			RatingSource: ratingSource,
			Category:     details.Category,
		})
	}

	day.Timeline = timeline
}

func mapsSearchLink(activityName, city string) string {
	query := url.Values{}
	query.Set("api", "1")
	query.Set("query", activityName+" "+city)
	return "https://www.google.com/maps/search/?" + query.Encode()
}

// entrySuffix distinguishes entries within a day; it need not be globally
// unique.
func entrySuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
