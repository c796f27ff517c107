package repositoryImp

import (
	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) ListByFarm(farmID string) ([]entities.Field, error) {
	out := []entities.Field{}
	if err := r.db.Where("farm_id = ?", farmID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) FindOwned(id, uid string) (*entities.Field, error) {
	var f entities.Field
	err := r.db.
		Joins("JOIN farms ON farms.id = fields.farm_id").
		Where("fields.id = ? AND farms.user_id = ?", id, uid).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) Update(f *entities.Field) error { return r.db.Save(f).Error }

func (r *fieldRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ?", id).Delete(&entities.CropRecommendation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Field{}).Error
	})
}
