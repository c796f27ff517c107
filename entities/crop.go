package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CropStage string

const (
	StagePlanning   CropStage = "planning"
	StagePlanting   CropStage = "planting"
	StageGrowing    CropStage = "growing"
	StageFlowering  CropStage = "flowering"
	StageHarvesting CropStage = "harvesting"
)

func (s CropStage) Valid() bool {
	switch s {
	case StagePlanning, StagePlanting, StageGrowing, StageFlowering, StageHarvesting:
		return true
	}
	return false
}

// Crop is the legacy farm-scoped crop log.
type Crop struct {
	ID                  string    `gorm:"primaryKey" json:"id"`
	FarmID              string    `gorm:"index" json:"farm_id"`
	CropType            string    `json:"crop_type"`
	Variety             string    `json:"variety"`
	CurrentStage        CropStage `json:"current_stage"`
	PlantingDate        *string   `json:"planting_date"`         // YYYY-MM-DD
	ExpectedHarvestDate *string   `json:"expected_harvest_date"` // YYYY-MM-DD

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Crop) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CurrentStage == "" {
		c.CurrentStage = StagePlanning
	}
	return nil
}
