package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/response_models"
)

type ItineraryRepository interface {
	SaveItinerary(ctx context.Context, itinerary response_models.Itinerary) error
	GetItineraryById(ctx context.Context, id string) (*response_models.Itinerary, error)
}

type PostgresItineraryRepository struct {
	db *gorm.DB
}

func NewPostgresItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &PostgresItineraryRepository{db: db}
}

func (r *PostgresItineraryRepository) SaveItinerary(ctx context.Context, itinerary response_models.Itinerary) error {
	payload, err := json.Marshal(itinerary)
	if err != nil {
		return err
	}

	record := db_models.ItineraryRecord{
		ID:      itinerary.ID,
		Title:   itinerary.Title,
		Payload: string(payload),
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *PostgresItineraryRepository) GetItineraryById(ctx context.Context, id string) (*response_models.Itinerary, error) {
	var record db_models.ItineraryRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(record.Payload), &itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}
