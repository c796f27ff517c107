package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropcast/entities"
	"cropcast/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) FindByID(id string) (*entities.Profile, error) {
	var p entities.Profile
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByEmail returns the oldest profile registered under email.
func (r *profileRepo) FindByEmail(email string) (*entities.Profile, error) {
	var p entities.Profile
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).Order("created_at ASC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(p *entities.Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "email", "updated_at"}),
	}).Create(p).Error
}

func (r *profileRepo) Update(p *entities.Profile) error { return r.db.Save(p).Error }
