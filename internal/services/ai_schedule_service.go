package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"triply/internal/models/response_models"
	"triply/pkg/utils"
)

const plannerSystemPrompt = "You are a professional travel planner. Always return valid JSON arrays."

const aiRequestTimeout = 30 * time.Second

type AIScheduleServiceInterface interface {
	GenerateSchedule(ctx context.Context, city, country string, start time.Time, numDays int, preferences []string, slots []string) ([]response_models.DaySchedule, error)
}

// AIScheduleService asks the external text-generation service for a
// day-indexed activity list and enriches it into full day schedules. Any
// transport or parse failure surfaces as a single error; no partial result
// ever escapes.
type AIScheduleService struct {
	client   utils.CompletionClientInterface
	timeline TimelineBuilderInterface
}

func NewAIScheduleService(client utils.CompletionClientInterface, timeline TimelineBuilderInterface) AIScheduleServiceInterface {
	return &AIScheduleService{
		client:   client,
		timeline: timeline,
	}
}

type aiDaySchedule struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
}

func (s *AIScheduleService) GenerateSchedule(ctx context.Context, city, country string, start time.Time, numDays int, preferences []string, slots []string) ([]response_models.DaySchedule, error) {
	prompt := buildItineraryPrompt(city, country, start.Format("2006-01-02"), numDays, preferences)

	ctx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()

	raw, err := s.client.GenerateItinerary(ctx, plannerSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	var aiDays []aiDaySchedule
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &aiDays); err != nil {
		return nil, fmt.Errorf("parse itinerary response: %w", err)
	}
	if len(aiDays) == 0 {
		return nil, fmt.Errorf("itinerary response contained no days")
	}

	// Dates come from the request, not the model: recompute sequentially
	// from the start date and ignore whatever the service suggested.
	schedule := make([]response_models.DaySchedule, 0, len(aiDays))
	for i, aiDay := range aiDays {
		date := start.AddDate(0, 0, i)
		day := response_models.DaySchedule{
			Day:           aiDay.Day,
			Date:          date.Format("2006-01-02"),
			DateFormatted: date.Format("January 02, 2006"),
			Activities:    aiDay.Activities,
		}
		s.timeline.AttachTimeline(&day, city, slots, preferences)
		schedule = append(schedule, day)
	}

	return schedule, nil
}

func buildItineraryPrompt(city, country, startDate string, numDays int, preferences []string) string {
	preferencesText := "general travel experiences"
	if len(preferences) > 0 {
		preferencesText = strings.Join(preferences, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s, %s.\n\n", numDays, city, country)
	fmt.Fprintf(&b, "Travel Preferences: %s\n\n", preferencesText)
	b.WriteString("For each day, provide specific, real attractions, restaurants, bars, or activities that match the preferences.\n")
	fmt.Fprintf(&b, "Be specific with actual place names and locations in %s.\n\n", city)
	b.WriteString("Return the response as a JSON array where each day is an object with:\n")
	b.WriteString("- \"day\": day number (1, 2, 3, etc.)\n")
	fmt.Fprintf(&b, "- \"date\": date in YYYY-MM-DD format (starting from %s)\n", startDate)
	b.WriteString("- \"activities\": array of specific activity names (e.g., \"Visit Schönbrunn Palace\" not \"Visit palace\")\n\n")
	b.WriteString("Example format:\n")
	fmt.Fprintf(&b, `[
  {
    "day": 1,
    "date": %q,
    "activities": ["Visit Schönbrunn Palace", "Explore Vienna's Historic Center", "Dinner at Figlmüller"]
  },
  {
    "day": 2,
    "date": %q,
    "activities": ["Tour of St. Stephen's Cathedral", "Visit Hofburg Palace", "Coffee at Café Central"]
  }
]`, startDate, startDate)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Make sure activities are specific to %s and match the preferences: %s.\n", city, preferencesText)
	fmt.Fprintf(&b, "Include %d activities per day on average, distributed across the selected preferences.", len(preferences))

	return b.String()
}

// stripCodeFences unwraps an optional markdown fence pair around the JSON
// body, preferring an explicit ```json delimiter over a generic one.
func stripCodeFences(response string) string {
	if i := strings.Index(response, "```json"); i >= 0 {
		response = response[i+len("```json"):]
		if j := strings.Index(response, "```"); j >= 0 {
			response = response[:j]
		}
	} else if i := strings.Index(response, "```"); i >= 0 {
		response = response[i+len("```"):]
		if j := strings.Index(response, "```"); j >= 0 {
			response = response[:j]
		}
	}
	return strings.TrimSpace(response)
}
