package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triply/internal/services"
	"triply/pkg/utils"
)

type CompanionController struct {
	companionService services.CompanionServiceInterface
}

func NewCompanionController(companionService services.CompanionServiceInterface) *CompanionController {
	return &CompanionController{
		companionService: companionService,
	}
}

// SuggestCompanions godoc
// @Summary Suggest travel companions
// @Description Generate random companion profiles for solo travelers
// @Tags Companion
// @Produce json
// @Param count query int false "Number of profiles" default(9) minimum(1) maximum(30)
// @Success 200 {object} utils.APIResponse{data=[]response_models.CompanionProfile}
// @Router /companions [get]
func (cc *CompanionController) SuggestCompanions(c *gin.Context) {
	countStr := c.DefaultQuery("count", "9")

	count, err := strconv.Atoi(countStr)
	if err != nil || count < 1 || count > 30 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid count (must be 1-30)")
		return
	}

	utils.RespondSuccess(c, cc.companionService.SuggestCompanions(count), "Companions suggested successfully")
}
