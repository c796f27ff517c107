package repository

import "cropcast/entities"

type FieldRepository interface {
	ListByFarm(farmID string) ([]entities.Field, error)
	// FindOwned loads a field only if its farm belongs to uid.
	FindOwned(id, uid string) (*entities.Field, error)
	Create(f *entities.Field) error
	Update(f *entities.Field) error
	Delete(id string) error
}
