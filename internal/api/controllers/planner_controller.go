package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

func (p *PlannerController) PlanHandler(c *gin.Context) {
	var req request_models.TripPlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := p.plannerService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created successfully")
}

func (p *PlannerController) GetItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "id is required")
		return
	}

	itinerary, err := p.plannerService.GetItineraryById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary found")
}
