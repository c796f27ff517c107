package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Factors are the four qualitative reasons attached to a crop suggestion.
type Factors struct {
	Soil     string `json:"soil"`
	Climate  string `json:"climate"`
	Rotation string `json:"rotation"`
	Water    string `json:"water"`
}

// CropRecommendation is one persisted row of a generation batch.
type CropRecommendation struct {
	ID                    string                      `gorm:"primaryKey" json:"id"`
	FieldID               string                      `gorm:"index" json:"field_id"`
	UserID                string                      `gorm:"index" json:"user_id"`
	CropType              string                      `json:"crop_type"`
	SuitabilityPercentage int                         `json:"suitability_percentage"`
	RecommendationFactors datatypes.JSONType[Factors] `json:"recommendation_factors"`
	WeatherData           datatypes.JSON              `json:"weather_data"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (r *CropRecommendation) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if len(r.WeatherData) == 0 {
		r.WeatherData = datatypes.JSON(`{}`)
	}
	return nil
}

// Advisory is a short farming tip shown on the dashboard ("recommendations" table).
type Advisory struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"index" json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Advisory) TableName() string { return "recommendations" }

func (a *Advisory) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
