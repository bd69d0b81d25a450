package services

import (
	"context"
	"log"
	"time"

	"triply/internal/models/request_models"
	"triply/internal/models/response_models"
	"triply/pkg/utils"
)

const dateLayout = "2006-01-02"

const (
	ScheduleSourceAI       = "ai"
	ScheduleSourceFallback = "fallback"
)

type ScheduleServiceInterface interface {
	GenerateSchedule(ctx context.Context, req request_models.PlanRequest) response_models.ScheduleResult
}

// ScheduleService is the orchestrator and the only place that picks between
// the AI path and the fallback path.
type ScheduleService struct {
	cfg      utils.ScheduleConfig
	planner  AIScheduleServiceInterface
	fallback FallbackServiceInterface
}

func NewScheduleService(cfg utils.ScheduleConfig, planner AIScheduleServiceInterface, fallback FallbackServiceInterface) ScheduleServiceInterface {
	return &ScheduleService{
		cfg:      cfg,
		planner:  planner,
		fallback: fallback,
	}
}

// GenerateSchedule resolves the request into day schedules. An unparseable
// or inverted date range yields an empty schedule by contract, never an
// error. Slots are generated once and shared across all days.
func (s *ScheduleService) GenerateSchedule(ctx context.Context, req request_models.PlanRequest) response_models.ScheduleResult {
	interval := utils.ParseIntervalHours(req.ActivityInterval, s.cfg)
	slots := utils.GenerateTimeSlots(req.ActivityStartTime, req.ActivityEndTime, interval, s.cfg)
	city, country := utils.SplitDestination(req.Destination)

	start, errStart := time.Parse(dateLayout, req.StartDate)
	end, errEnd := time.Parse(dateLayout, req.EndDate)
	if errStart != nil || errEnd != nil {
		return response_models.ScheduleResult{
			Source: ScheduleSourceFallback,
			Days:   []response_models.DaySchedule{},
		}
	}

	numDays := int(end.Sub(start).Hours()/24) + 1
	if numDays < 1 {
		return response_models.ScheduleResult{
			Source: ScheduleSourceFallback,
			Days:   []response_models.DaySchedule{},
		}
	}

	days, err := s.planner.GenerateSchedule(ctx, city, country, start, numDays, req.Preferences, slots)
	if err != nil || len(days) == 0 {
		if err != nil {
			log.Printf("AI schedule unavailable, using fallback: %v", err)
		}
		return response_models.ScheduleResult{
			Source: ScheduleSourceFallback,
			Days:   s.fallback.GenerateSchedule(city, start, numDays, req.Preferences, slots),
		}
	}

	return response_models.ScheduleResult{
		Source: ScheduleSourceAI,
		Days:   days,
	}
}
