package repository

import "cropcast/entities"

type FarmRepository interface {
	ListByUser(uid string) ([]entities.Farm, error)
	FindByID(id, uid string) (*entities.Farm, error)
	Create(f *entities.Farm) error
	Update(f *entities.Farm) error
	// Delete removes the farm with its fields, crops and their recommendations.
	Delete(id, uid string) error
}
