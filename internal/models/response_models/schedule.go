package response_models

type TimelineEntry struct {
	ID           string  `json:"id"`
	Time         string  `json:"time"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Link         string  `json:"link"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	RatingSource string  `json:"rating_source"`
	Category     string  `json:"category"`
}

type DaySchedule struct {
	Day           int             `json:"day"`
	Date          string          `json:"date"`
	DateFormatted string          `json:"date_formatted"`
	Activities    []string        `json:"activities"`
	Timeline      []TimelineEntry `json:"timeline"`
}

// ScheduleResult is the discriminated outcome of schedule generation. Only
// the orchestrator writes Source; consumers of Days are agnostic to which
// path produced them.
type ScheduleResult struct {
	Source string        `json:"source"`
	Days   []DaySchedule `json:"days"`
}

// PlanResponse echoes the normalized request parameters alongside the
// generated schedule.
type PlanResponse struct {
	Destination       string             `json:"destination"`
	City              string             `json:"city"`
	Country           string             `json:"country"`
	StartDate         string             `json:"start_date"`
	EndDate           string             `json:"end_date"`
	Preferences       []string           `json:"preferences"`
	ActivityInterval  int                `json:"activity_interval"`
	ActivityStartTime string             `json:"activity_start_time"`
	ActivityEndTime   string             `json:"activity_end_time"`
	Source            string             `json:"source"`
	Schedule          []DaySchedule      `json:"schedule"`
	TravelAlone       string             `json:"travel_alone"`
	MatchingUsers     []CompanionProfile `json:"matching_users,omitempty"`
}
