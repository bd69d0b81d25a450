package utils

// MealWindow is a half-open hour-of-day range [From, To).
type MealWindow struct {
	From int
	To   int
}

func (w MealWindow) Contains(hour int) bool {
	return hour >= w.From && hour < w.To
}

// ScheduleConfig carries the fixed planning constants. It is built once at
// wiring time and passed by value so the engine has no mutable globals.
type ScheduleConfig struct {
	DefaultIntervalHours int
	MinIntervalHours     int
	MaxIntervalHours     int
	DefaultStartTime     string
	DefaultEndTime       string

	BreakfastWindow MealWindow
	LunchWindow     MealWindow
	DinnerWindow    MealWindow

	RatingMin  float64
	RatingMax  float64
	ReviewsMin int
	ReviewsMax int
}

func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		DefaultIntervalHours: 3,
		MinIntervalHours:     1,
		MaxIntervalHours:     4,
		DefaultStartTime:     "08:00",
		DefaultEndTime:       "22:00",
		BreakfastWindow:      MealWindow{From: 7, To: 10},
		LunchWindow:          MealWindow{From: 12, To: 14},
		DinnerWindow:         MealWindow{From: 18, To: 21},
		RatingMin:            4.2,
		RatingMax:            4.9,
		ReviewsMin:           120,
		ReviewsMax:           3200,
	}
}
