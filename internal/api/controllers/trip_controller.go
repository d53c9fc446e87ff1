package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ankala/internal/models/request_models"
	"ankala/internal/services"
	"ankala/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

func (t *TripController) GenerateTripHandler(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.GenerateTrip(c.Request.Context(), req, c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip generated successfully")
}

func (t *TripController) GetTripHandler(c *gin.Context) {
	tripId := c.Param("id")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	trip, err := t.tripService.GetTripById(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "")
}

func (t *TripController) ListMyTripsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
		return
	}

	trips, err := t.tripService.GetListOfTripsByUserEmail(c.Request.Context(), c.GetString("user_email"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

func (t *TripController) DeleteTripHandler(c *gin.Context) {
	tripId := c.Param("id")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripId, c.GetString("user_email")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}

func (t *TripController) ShareTripHandler(c *gin.Context) {
	tripId := c.Param("id")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	share, err := t.tripService.GetShareMessage(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, share, "")
}
