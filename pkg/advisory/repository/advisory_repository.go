package repository

import "cropcast/entities"

type AdvisoryRepository interface {
	Latest(uid string, limit int) ([]entities.Advisory, error)
	Create(a *entities.Advisory) error
}
