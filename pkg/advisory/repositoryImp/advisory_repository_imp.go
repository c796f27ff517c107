package repositoryImp

import (
	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/advisory/repository"
)

type advisoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AdvisoryRepository { return &advisoryRepo{db} }

func (r *advisoryRepo) Latest(uid string, limit int) ([]entities.Advisory, error) {
	q := r.db.Where("user_id = ?", uid).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	out := []entities.Advisory{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *advisoryRepo) Create(a *entities.Advisory) error { return r.db.Create(a).Error }
