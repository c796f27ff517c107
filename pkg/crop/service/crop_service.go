package service

import "cropcast/entities"

type CropService interface {
	ListByFarm(farmID, uid string, limit int) ([]entities.Crop, error)
	Create(farmID, uid string, c *entities.Crop) (*entities.Crop, error)
	UpdatePartial(id, uid string, patch CropPatch) (*entities.Crop, error)
	Delete(id, uid string) error
}

type CropPatch struct {
	CropType            *string             `json:"crop_type"`
	Variety             *string             `json:"variety"`
	CurrentStage        *entities.CropStage `json:"current_stage"`
	PlantingDate        *string             `json:"planting_date"`
	ExpectedHarvestDate *string             `json:"expected_harvest_date"`
}
