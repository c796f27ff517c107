package repositoryImp

import (
	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) ListByFarm(farmID string, limit int) ([]entities.Crop, error) {
	q := r.db.Where("farm_id = ?", farmID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	out := []entities.Crop{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) FindOwned(id, uid string) (*entities.Crop, error) {
	var c entities.Crop
	err := r.db.
		Joins("JOIN farms ON farms.id = crops.farm_id").
		Where("crops.id = ? AND farms.user_id = ?", id, uid).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) Create(c *entities.Crop) error { return r.db.Create(c).Error }

func (r *cropRepo) Update(c *entities.Crop) error { return r.db.Save(c).Error }

func (r *cropRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.Crop{}).Error
}
