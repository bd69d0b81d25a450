package services_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triply/internal/models/response_models"
	"triply/internal/services"
	"triply/pkg/utils"
)

func newTimelineBuilder(seed int64) services.TimelineBuilderInterface {
	return services.NewTimelineBuilder(utils.DefaultScheduleConfig(), rand.New(rand.NewSource(seed)))
}

func categoryCounts(timeline []response_models.TimelineEntry) map[string]int {
	counts := make(map[string]int)
	for _, entry := range timeline {
		counts[entry.Category]++
	}
	return counts
}

func TestTimelineBuilder_TimelineLengthMatchesSlots(t *testing.T) {
	builder := newTimelineBuilder(1)

	day := response_models.DaySchedule{Day: 1, Activities: []string{"Museum tour"}}
	slots := []string{"08:00", "11:00", "14:00", "17:00", "20:00"}
	builder.AttachTimeline(&day, "Vienna", slots, nil)

	require.Len(t, day.Timeline, len(slots))
	for i, entry := range day.Timeline {
		assert.Equal(t, slots[i], entry.Time)
	}
}

func TestTimelineBuilder_MealsPlacedAtMostOncePerDay(t *testing.T) {
	builder := newTimelineBuilder(7)

	// Hourly slots cover every meal window several times over.
	cfg := utils.DefaultScheduleConfig()
	slots := utils.GenerateTimeSlots("07:00", "21:00", 1, cfg)

	day := response_models.DaySchedule{Day: 1, Activities: []string{"City walk", "Gallery visit"}}
	builder.AttachTimeline(&day, "Rome", slots, []string{"Bars"})

	counts := categoryCounts(day.Timeline)
	assert.Equal(t, 1, counts["Breakfast"])
	assert.Equal(t, 1, counts["Lunch"])
	assert.Equal(t, 1, counts["Dinner"])
}

func TestTimelineBuilder_FirstSlotInWindowClaimsTheMeal(t *testing.T) {
	builder := newTimelineBuilder(2)

	// Both 07:00 and 09:00 land in the breakfast window; only the first
	// becomes breakfast, the second falls through to a regular activity.
	day := response_models.DaySchedule{Day: 1, Activities: []string{"Harbor walk"}}
	builder.AttachTimeline(&day, "Porto", []string{"07:00", "09:00"}, nil)

	require.Len(t, day.Timeline, 2)
	assert.Equal(t, "Breakfast", day.Timeline[0].Category)
	assert.Equal(t, "Harbor walk", day.Timeline[1].Title)
	assert.Equal(t, "General", day.Timeline[1].Category)
}

func TestTimelineBuilder_MealCopyOverridesGenericCopy(t *testing.T) {
	builder := newTimelineBuilder(3)

	day := response_models.DaySchedule{Day: 2, Activities: []string{"Anything"}}
	builder.AttachTimeline(&day, "Lisbon", []string{"08:00", "12:00", "19:00"}, nil)

	require.Len(t, day.Timeline, 3)

	breakfast := day.Timeline[0]
	assert.Equal(t, "Gourmet breakfast in Lisbon", breakfast.Title)
	assert.Equal(t, "Start the morning with freshly baked pastries and local coffee culture in Lisbon.", breakfast.Description)
	assert.Equal(t, "Breakfast", breakfast.Category)

	lunch := day.Timeline[1]
	assert.Equal(t, "Local lunch experience in Lisbon", lunch.Title)
	assert.Equal(t, "Lunch", lunch.Category)

	dinner := day.Timeline[2]
	assert.Equal(t, "Signature dinner in Lisbon", dinner.Title)
	assert.Equal(t, "Dinner", dinner.Category)
}

func TestTimelineBuilder_EmptyActivitiesUsePlaceholders(t *testing.T) {
	builder := newTimelineBuilder(4)

	day := response_models.DaySchedule{Day: 1}
	builder.AttachTimeline(&day, "Oslo", []string{"11:00", "14:00"}, nil)

	require.Len(t, day.Timeline, 2)
	assert.Equal(t, "Explore Oslo", day.Timeline[0].Title)
	assert.Equal(t, "Local experience in Oslo", day.Timeline[1].Title)
}

func TestTimelineBuilder_NonRandomFieldsAreStableAcrossCalls(t *testing.T) {
	// Two builders with different seeds must agree on everything except the
	// rating and the review count.
	first := response_models.DaySchedule{Day: 1, Activities: []string{"Museum tour"}}
	newTimelineBuilder(5).AttachTimeline(&first, "Vienna", []string{"11:00"}, nil)

	second := response_models.DaySchedule{Day: 1, Activities: []string{"Museum tour"}}
	newTimelineBuilder(99).AttachTimeline(&second, "Vienna", []string{"11:00"}, nil)

	require.Len(t, first.Timeline, 1)
	require.Len(t, second.Timeline, 1)
	assert.Equal(t,
		"Experience Museum tour in Vienna. A highly rated general highlight recommended for curious travelers.",
		first.Timeline[0].Description)
	assert.Equal(t, first.Timeline[0].Description, second.Timeline[0].Description)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Museum+tour+Vienna", first.Timeline[0].Link)
	assert.Equal(t, first.Timeline[0].Link, second.Timeline[0].Link)
}

func TestTimelineBuilder_RatingsAndReviewsStayInRange(t *testing.T) {
	builder := newTimelineBuilder(6)
	cfg := utils.DefaultScheduleConfig()
	slots := utils.GenerateTimeSlots("07:00", "21:00", 1, cfg)

	for i := 0; i < 20; i++ {
		day := response_models.DaySchedule{Day: 1, Activities: []string{"Street food crawl"}}
		builder.AttachTimeline(&day, "Bangkok", slots, nil)
		for _, entry := range day.Timeline {
			assert.GreaterOrEqual(t, entry.Rating, 4.2)
			assert.LessOrEqual(t, entry.Rating, 4.9)
			assert.GreaterOrEqual(t, entry.Reviews, 120)
			assert.LessOrEqual(t, entry.Reviews, 3200)
			assert.Equal(t, "Google Maps", entry.RatingSource)
		}
	}
}

func TestTimelineBuilder_EntryIDCarriesDayPrefix(t *testing.T) {
	builder := newTimelineBuilder(8)

	day := response_models.DaySchedule{Day: 3, Activities: []string{"Old town stroll"}}
	builder.AttachTimeline(&day, "Krakow", []string{"11:00", "15:00"}, nil)

	seen := make(map[string]bool)
	for _, entry := range day.Timeline {
		assert.True(t, strings.HasPrefix(entry.ID, "3-"))
		assert.Len(t, entry.ID, len("3-")+8)
		assert.False(t, seen[entry.ID], "ids should distinguish entries within a day")
		seen[entry.ID] = true
	}
}

// The activity cycle and the preference cycle share one counter but wrap over
// independently sized lists, so the pairing drifts when lengths differ. That
// positional drift is intended behavior; this test pins it.
func TestTimelineBuilder_PreferenceCyclePairsPositionally(t *testing.T) {
	builder := newTimelineBuilder(9)

	day := response_models.DaySchedule{Day: 1, Activities: []string{"Tile workshop", "River cruise"}}
	slots := []string{"11:00", "14:00", "15:00", "16:00", "17:00"} // all outside meal windows
	builder.AttachTimeline(&day, "Lisbon", slots, []string{"Bars", "Nature", "Shopping"})

	require.Len(t, day.Timeline, 5)

	titles := make([]string, 0, 5)
	categories := make([]string, 0, 5)
	for _, entry := range day.Timeline {
		titles = append(titles, entry.Title)
		categories = append(categories, entry.Category)
	}

	assert.Equal(t, []string{"Tile workshop", "River cruise", "Tile workshop", "River cruise", "Tile workshop"}, titles)
	assert.Equal(t, []string{"Bars", "Nature", "Shopping", "Bars", "Nature"}, categories)
}

func TestTimelineBuilder_MealSlotsDoNotAdvanceActivityCycle(t *testing.T) {
	builder := newTimelineBuilder(10)

	// 12:00 is claimed by lunch; the activity after it continues the cycle
	// instead of skipping an entry.
	day := response_models.DaySchedule{Day: 1, Activities: []string{"First stop", "Second stop"}}
	builder.AttachTimeline(&day, "Madrid", []string{"11:00", "12:00", "15:00"}, nil)

	require.Len(t, day.Timeline, 3)
	assert.Equal(t, "First stop", day.Timeline[0].Title)
	assert.Equal(t, "Lunch", day.Timeline[1].Category)
	assert.Equal(t, "Second stop", day.Timeline[2].Title)
}
