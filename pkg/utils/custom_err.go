package utils

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrQueryTooShort  = errors.New("query too short")
	ErrAnswerNotFound = errors.New("travel answer not found")
	ErrPlanNotFound   = errors.New("itinerary not found")
	ErrSearchProvider = errors.New("search provider error")
	ErrTextGeneration = errors.New("text generation error")
	ErrMissingAPIKey  = errors.New("api key not configured")
	ErrStorageError   = errors.New("storage error")
)
