package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoilTypes is the fixed set a Field's soil type must belong to.
var SoilTypes = []string{"Clay", "Sandy", "Loamy", "Silty", "Peaty", "Chalky", "Mixed"}

func ValidSoilType(s string) bool {
	for _, v := range SoilTypes {
		if v == s {
			return true
		}
	}
	return false
}

type Field struct {
	ID            string   `gorm:"primaryKey" json:"id"`
	FarmID        string   `gorm:"index" json:"farm_id"`
	FieldName     string   `json:"field_name"`
	SoilType      string   `json:"soil_type"`
	FieldLocation string   `json:"field_location"`
	AreaSize      float64  `json:"area_size"`
	PreviousCrops []string `gorm:"serializer:json;type:text" json:"previous_crops"` // ordered, duplicates allowed

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Field) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.PreviousCrops == nil {
		f.PreviousCrops = []string{}
	}
	return nil
}
