package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/models/response_models"
	"tripsmith/internal/repositories"
	"tripsmith/pkg/utils"
)

const plannerSystemPrompt = "You are a professional travel planner. Create detailed day-by-day itineraries with specific activities, timing, and practical information. Include accommodation strategies, budget breakdowns, and weather contingencies. Format your response as structured JSON that matches the expected itinerary schema."

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.TripPlannerRequest) (*response_models.Itinerary, error)
	GetItineraryById(ctx context.Context, id string) (*response_models.Itinerary, error)
}

type PlannerService struct {
	llm         utils.TextGeneratorInterface
	itineraries repositories.ItineraryRepository
}

func NewPlannerService(
	llm utils.TextGeneratorInterface,
	itineraries repositories.ItineraryRepository,
) PlannerServiceInterface {
	return &PlannerService{
		llm:         llm,
		itineraries: itineraries,
	}
}

// GenerateItinerary asks the generation provider for itinerary JSON and
// normalizes whatever comes back. Normalization cannot fail, so the only
// error paths are the provider call and storage.
func (s *PlannerService) GenerateItinerary(ctx context.Context, req request_models.TripPlannerRequest) (*response_models.Itinerary, error) {
	rawResponse, err := s.llm.GenerateText(ctx, utils.GenerationRequest{
		SystemPrompt: plannerSystemPrompt,
		UserPrompt:   buildPlannerPrompt(req),
		MaxTokens:    2000,
		Temperature:  0.7,
	})
	if err != nil {
		log.Printf("Planner generation error: %v", err)
		return nil, utils.ErrTextGeneration
	}

	log.Printf("Raw planner response: %s", rawResponse)

	itinerary := NormalizeItinerary(req, stripCodeFences(rawResponse))

	if err := s.itineraries.SaveItinerary(ctx, itinerary); err != nil {
		log.Printf("Failed to save itinerary: %v", err)
		return nil, utils.ErrStorageError
	}

	return &itinerary, nil
}

func (s *PlannerService) GetItineraryById(ctx context.Context, id string) (*response_models.Itinerary, error) {
	itinerary, err := s.itineraries.GetItineraryById(ctx, id)
	if err != nil {
		return nil, utils.ErrStorageError
	}
	if itinerary == nil {
		return nil, utils.ErrPlanNotFound
	}
	return itinerary, nil
}

func buildPlannerPrompt(req request_models.TripPlannerRequest) string {
	return fmt.Sprintf(`Create a %s travel itinerary for %s with the following requirements:
- Party size: %s
- Maximum drive time: %s
- Interests: %s
- Budget level: %s

IMPORTANT: The interests field contains the destination. Extract the destination from: "%s". If multiple destinations are mentioned, choose the primary one. If no specific destination is mentioned, suggest an appropriate one based on the other interests.

Provide a detailed day-by-day breakdown with morning and afternoon activities, highlights, rain backup plans, and accommodation strategy for the chosen destination.`,
		req.TripLength, req.TravelMonth, req.PartySize, req.MaxDriveTime, req.Interests, req.Budget, req.Interests)
}

// stripCodeFences removes Markdown fences some models wrap their JSON in.
func stripCodeFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
