package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"triply/internal/models/request_models"
	"triply/internal/models/response_models"
	"triply/internal/services"
	"triply/pkg/utils"
)

const defaultCompanionCount = 9

type PlanController struct {
	scheduleService  services.ScheduleServiceInterface
	companionService services.CompanionServiceInterface
	cfg              utils.ScheduleConfig
}

func NewPlanController(
	scheduleService services.ScheduleServiceInterface,
	companionService services.CompanionServiceInterface,
	cfg utils.ScheduleConfig) *PlanController {

	return &PlanController{
		scheduleService:  scheduleService,
		companionService: companionService,
		cfg:              cfg,
	}
}

// GeneratePlan godoc
// @Summary Generate a day-by-day travel plan
// @Description Build a timed itinerary for a destination and date range; falls back to the offline generator when the AI service is unavailable
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Trip parameters; malformed fields resolve to defaults"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan request payload")
		return
	}

	result := p.scheduleService.GenerateSchedule(c.Request.Context(), req)

	city, country := utils.SplitDestination(req.Destination)
	startTime := req.ActivityStartTime
	if startTime == "" {
		startTime = p.cfg.DefaultStartTime
	}
	endTime := req.ActivityEndTime
	if endTime == "" {
		endTime = p.cfg.DefaultEndTime
	}

	var companions []response_models.CompanionProfile
	if strings.EqualFold(req.TravelAlone, "yes") {
		companions = p.companionService.SuggestCompanions(defaultCompanionCount)
	}

	utils.RespondSuccess(c, response_models.PlanResponse{
		Destination:       req.Destination,
		City:              city,
		Country:           country,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Preferences:       req.Preferences,
		ActivityInterval:  utils.ParseIntervalHours(req.ActivityInterval, p.cfg),
		ActivityStartTime: startTime,
		ActivityEndTime:   endTime,
		Source:            result.Source,
		Schedule:          result.Days,
		TravelAlone:       req.TravelAlone,
		MatchingUsers:     companions,
	}, "Travel plan generated successfully")
}
