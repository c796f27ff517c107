package repositoryImp

import (
	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/recommend/repository"
)

type recommendRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendRepository { return &recommendRepo{db} }

func (r *recommendRepo) Save(rec *entities.CropRecommendation) error { return r.db.Create(rec).Error }

func (r *recommendRepo) ListByField(fieldID, uid string) ([]entities.CropRecommendation, error) {
	out := []entities.CropRecommendation{}
	err := r.db.Where("field_id = ? AND user_id = ?", fieldID, uid).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
