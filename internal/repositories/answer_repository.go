package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/models/response_models"
)

type AnswerRepository interface {
	SaveAnswer(ctx context.Context, answer response_models.TravelAnswer) error
	GetAnswerById(ctx context.Context, id string) (*response_models.TravelAnswer, error)
}

type PostgresAnswerRepository struct {
	db *gorm.DB
}

func NewPostgresAnswerRepository(db *gorm.DB) AnswerRepository {
	return &PostgresAnswerRepository{db: db}
}

func (r *PostgresAnswerRepository) SaveAnswer(ctx context.Context, answer response_models.TravelAnswer) error {
	payload, err := json.Marshal(answer)
	if err != nil {
		return err
	}

	record := db_models.TravelAnswerRecord{
		ID:      answer.ID,
		Query:   answer.Query,
		Payload: string(payload),
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *PostgresAnswerRepository) GetAnswerById(ctx context.Context, id string) (*response_models.TravelAnswer, error) {
	var record db_models.TravelAnswerRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var answer response_models.TravelAnswer
	if err := json.Unmarshal([]byte(record.Payload), &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}
