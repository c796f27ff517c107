package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Farm struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	UserID    string   `gorm:"index" json:"user_id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	AreaSize  float64  `json:"area_size"`
	SoilType  string   `json:"soil_type"`

	Fields []Field `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Crops  []Crop  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Farm) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
