package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

type ExplorerController struct {
	explorerService services.ExplorerServiceInterface
}

func NewExplorerController(explorerService services.ExplorerServiceInterface) *ExplorerController {
	return &ExplorerController{
		explorerService: explorerService,
	}
}

func (e *ExplorerController) SearchHandler(c *gin.Context) {
	var req request_models.TravelQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	answer, err := e.explorerService.AnswerTravelQuery(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, answer, "Travel answer generated successfully")
}

func (e *ExplorerController) GetAnswerHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "id is required")
		return
	}

	answer, err := e.explorerService.GetTravelAnswerById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, answer, "Travel answer found")
}
