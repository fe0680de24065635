package repositories

import (
	"context"
	"sync"

	"tripsmith/internal/models/response_models"
)

// In-memory repositories back the default deployment. They are caches, not
// systems of record: nothing survives a restart.

type MemoryAnswerRepository struct {
	mu   sync.RWMutex
	data map[string]response_models.TravelAnswer
}

func NewMemoryAnswerRepository() *MemoryAnswerRepository {
	return &MemoryAnswerRepository{
		data: make(map[string]response_models.TravelAnswer),
	}
}

func (r *MemoryAnswerRepository) SaveAnswer(_ context.Context, answer response_models.TravelAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[answer.ID] = answer
	return nil
}

func (r *MemoryAnswerRepository) GetAnswerById(_ context.Context, id string) (*response_models.TravelAnswer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	answer, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return &answer, nil
}

type MemoryItineraryRepository struct {
	mu   sync.RWMutex
	data map[string]response_models.Itinerary
}

func NewMemoryItineraryRepository() *MemoryItineraryRepository {
	return &MemoryItineraryRepository{
		data: make(map[string]response_models.Itinerary),
	}
}

func (r *MemoryItineraryRepository) SaveItinerary(_ context.Context, itinerary response_models.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[itinerary.ID] = itinerary
	return nil
}

func (r *MemoryItineraryRepository) GetItineraryById(_ context.Context, id string) (*response_models.Itinerary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	itinerary, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return &itinerary, nil
}
