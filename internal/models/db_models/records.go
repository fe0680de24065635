package db_models

// Stored workflow outputs keep the rendered response JSON as their payload;
// the API shape is the contract, not the table layout.

type TravelAnswerRecord struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Query     string
	Payload   string `gorm:"type:jsonb"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (TravelAnswerRecord) TableName() string { return "travel_answers" }

type ItineraryRecord struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Title     string
	Payload   string `gorm:"type:jsonb"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (ItineraryRecord) TableName() string { return "itineraries" }
