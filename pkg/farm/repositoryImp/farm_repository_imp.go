package repositoryImp

import (
	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) ListByUser(uid string) ([]entities.Farm, error) {
	out := []entities.Farm{}
	if err := r.db.Where("user_id = ?", uid).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) FindByID(id, uid string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) Create(f *entities.Farm) error { return r.db.Create(f).Error }

func (r *farmRepo) Update(f *entities.Farm) error { return r.db.Save(f).Error }

func (r *farmRepo) Delete(id, uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var f entities.Farm
		if err := tx.Where("id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
			return err
		}
		fieldIDs := tx.Model(&entities.Field{}).Select("id").Where("farm_id = ?", f.ID)
		if err := tx.Where("field_id IN (?)", fieldIDs).Delete(&entities.CropRecommendation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("farm_id = ?", f.ID).Delete(&entities.Field{}).Error; err != nil {
			return err
		}
		if err := tx.Where("farm_id = ?", f.ID).Delete(&entities.Crop{}).Error; err != nil {
			return err
		}
		return tx.Delete(&f).Error
	})
}
