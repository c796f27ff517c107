package repository

import "cropcast/entities"

type ProfileRepository interface {
	FindByID(id string) (*entities.Profile, error)
	FindByEmail(email string) (*entities.Profile, error)
	Upsert(p *entities.Profile) error
	Update(p *entities.Profile) error
}
