package utils

import (
	"strconv"
	"strings"
	"time"
)

const slotLayout = "15:04"

// ClampIntervalHours forces the slot interval into the configured range.
func ClampIntervalHours(hours int, cfg ScheduleConfig) int {
	if hours < cfg.MinIntervalHours {
		return cfg.MinIntervalHours
	}
	if hours > cfg.MaxIntervalHours {
		return cfg.MaxIntervalHours
	}
	return hours
}

// ParseIntervalHours parses an untrusted interval value. Anything that is not
// an integer resolves to the default; integers are clamped.
func ParseIntervalHours(raw string, cfg ScheduleConfig) int {
	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return cfg.DefaultIntervalHours
	}
	return ClampIntervalHours(hours, cfg)
}

// GenerateTimeSlots builds the ordered "HH:MM" labels for one day: start time
// stepped by the interval, inclusive of a label landing exactly on the end
// time. Unparseable times fall back to the configured window and default
// interval; an end at or before the start becomes start+12h. Pure: the slot
// count for given inputs is always the same.
func GenerateTimeSlots(startTime, endTime string, intervalHours int, cfg ScheduleConfig) []string {
	intervalHours = ClampIntervalHours(intervalHours, cfg)

	start, errStart := time.Parse(slotLayout, startTime)
	end, errEnd := time.Parse(slotLayout, endTime)
	if errStart != nil || errEnd != nil {
		start, _ = time.Parse(slotLayout, cfg.DefaultStartTime)
		end, _ = time.Parse(slotLayout, cfg.DefaultEndTime)
		intervalHours = cfg.DefaultIntervalHours
	}

	if !end.After(start) {
		end = start.Add(12 * time.Hour)
	}

	var slots []string
	for current := start; !current.After(end); current = current.Add(time.Duration(intervalHours) * time.Hour) {
		slots = append(slots, current.Format(slotLayout))
	}
	return slots
}

// SlotHour extracts the hour component of a "HH:MM" label. Returns -1 for a
// malformed label so it never lands in a meal window.
func SlotHour(slot string) int {
	hour, err := strconv.Atoi(strings.SplitN(slot, ":", 2)[0])
	if err != nil {
		return -1
	}
	return hour
}
