package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ankala/internal/services"
	"ankala/pkg/utils"
)

type TipsController struct {
	tipsService services.TipsServiceInterface
}

func NewTipsController(tipsService services.TipsServiceInterface) *TipsController {
	return &TipsController{tipsService: tipsService}
}

func (t *TipsController) TripTipsHandler(c *gin.Context) {
	tripId := c.Param("id")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	tips, err := t.tipsService.GetTripTips(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tips, "")
}
