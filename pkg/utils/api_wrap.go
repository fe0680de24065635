package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQueryTooShort):
		RespondError(c, http.StatusBadRequest, "Query too short")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request format")
	case errors.Is(err, ErrAnswerNotFound):
		RespondError(c, http.StatusNotFound, "Travel answer not found")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrMissingAPIKey):
		RespondError(c, http.StatusInternalServerError, "API keys not configured. Please set TAVILY_API_KEY and the generation provider key.")
	case errors.Is(err, ErrSearchProvider):
		log.Printf("Search provider error: %v", err)
		RespondError(c, http.StatusInternalServerError, "An error occurred while processing your travel query")
	case errors.Is(err, ErrTextGeneration):
		log.Printf("Text generation error: %v", err)
		RespondError(c, http.StatusInternalServerError, "An error occurred while generating your itinerary")
	case errors.Is(err, ErrStorageError):
		log.Printf("Storage error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
