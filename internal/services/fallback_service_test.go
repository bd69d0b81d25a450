package services_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triply/internal/services"
	"triply/pkg/utils"
)

func newFallbackService(seed int64) services.FallbackServiceInterface {
	cfg := utils.DefaultScheduleConfig()
	rng := rand.New(rand.NewSource(seed))
	return services.NewFallbackService(rng, services.NewTimelineBuilder(cfg, rng))
}

func defaultSlots() []string {
	cfg := utils.DefaultScheduleConfig()
	return utils.GenerateTimeSlots(cfg.DefaultStartTime, cfg.DefaultEndTime, cfg.DefaultIntervalHours, cfg)
}

func TestFallbackService_BarsPreferenceDrawsFromBarsTemplates(t *testing.T) {
	svc := newFallbackService(42)

	barsTemplates := []string{
		"Evening drinks at rooftop bar in Lisbon",
		"Local pub crawl in Lisbon",
		"Cocktail tasting at trendy bars in Lisbon",
		"Live music venue in Lisbon",
		"Wine bar exploration in Lisbon",
		"Nightlife district tour in Lisbon",
	}

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	schedule := svc.GenerateSchedule("Lisbon", start, 2, []string{"Bars"}, defaultSlots())

	require.Len(t, schedule, 2)
	for _, day := range schedule {
		require.NotEmpty(t, day.Activities)
		seen := make(map[string]bool)
		for _, activity := range day.Activities {
			assert.Contains(t, activity, "Lisbon")
			assert.Contains(t, barsTemplates, activity)
			assert.False(t, seen[activity], "no duplicate activities within one day")
			seen[activity] = true
		}
	}
}

func TestFallbackService_UnrecognizedPreferencesUsePlaceholders(t *testing.T) {
	svc := newFallbackService(1)

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	schedule := svc.GenerateSchedule("Reykjavik", start, 1, []string{"Spelunking"}, defaultSlots())

	require.Len(t, schedule, 1)
	assert.Equal(t, []string{"Explore Reykjavik", "Local experience in Reykjavik"}, schedule[0].Activities)
}

func TestFallbackService_DatesRunSequentiallyFromStart(t *testing.T) {
	svc := newFallbackService(2)

	start := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	schedule := svc.GenerateSchedule("Athens", start, 3, []string{"Nature"}, defaultSlots())

	require.Len(t, schedule, 3)
	assert.Equal(t, 1, schedule[0].Day)
	assert.Equal(t, "2026-06-30", schedule[0].Date)
	assert.Equal(t, "June 30, 2026", schedule[0].DateFormatted)
	assert.Equal(t, 2, schedule[1].Day)
	assert.Equal(t, "2026-07-01", schedule[1].Date)
	assert.Equal(t, 3, schedule[2].Day)
	assert.Equal(t, "2026-07-02", schedule[2].Date)
}

func TestFallbackService_LaterDaysSampleASingleActivityPerPreference(t *testing.T) {
	svc := newFallbackService(3)

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	schedule := svc.GenerateSchedule("Barcelona", start, 5, []string{"Nature"}, defaultSlots())

	require.Len(t, schedule, 5)
	for _, day := range schedule[:3] {
		assert.GreaterOrEqual(t, len(day.Activities), 1)
		assert.LessOrEqual(t, len(day.Activities), 2)
	}
	// Day 4 onward draws exactly one candidate per preference.
	for _, day := range schedule[3:] {
		assert.Len(t, day.Activities, 1)
	}
}

func TestFallbackService_EveryDayCarriesAFullTimeline(t *testing.T) {
	svc := newFallbackService(4)

	slots := defaultSlots()
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	schedule := svc.GenerateSchedule("Lisbon", start, 2, []string{"Bars", "Beaches"}, slots)

	for _, day := range schedule {
		assert.Len(t, day.Timeline, len(slots))
	}
}
