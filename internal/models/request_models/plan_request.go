package request_models

// PlanRequest is the trip form payload. Every field arrives as an untrusted
// string; absent or malformed values resolve to documented defaults instead
// of failing the request.
type PlanRequest struct {
	Destination       string   `json:"destination"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	Preferences       []string `json:"preferences"`
	ActivityInterval  string   `json:"activity_interval"`
	ActivityStartTime string   `json:"activity_start_time"`
	ActivityEndTime   string   `json:"activity_end_time"`
	TravelAlone       string   `json:"travel_alone"`
}
