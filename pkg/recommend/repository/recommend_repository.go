package repository

import "cropcast/entities"

type RecommendRepository interface {
	Save(r *entities.CropRecommendation) error
	ListByField(fieldID, uid string) ([]entities.CropRecommendation, error)
}
