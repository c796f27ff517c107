package repository

import "cropcast/entities"

type CropRepository interface {
	// ListByFarm returns newest first; limit <= 0 means no limit.
	ListByFarm(farmID string, limit int) ([]entities.Crop, error)
	FindOwned(id, uid string) (*entities.Crop, error)
	Create(c *entities.Crop) error
	Update(c *entities.Crop) error
	Delete(id string) error
}
