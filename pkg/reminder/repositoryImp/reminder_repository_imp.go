package repositoryImp

import (
	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/reminder/repository"
)

type reminderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReminderRepository { return &reminderRepo{db} }

func (r *reminderRepo) ListByUser(uid string) ([]entities.Reminder, error) {
	out := []entities.Reminder{}
	if err := r.db.Where("user_id = ?", uid).Order("reminder_date ASC, created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reminderRepo) FindByID(id, uid string) (*entities.Reminder, error) {
	var m entities.Reminder
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *reminderRepo) Create(m *entities.Reminder) error { return r.db.Create(m).Error }

func (r *reminderRepo) Update(m *entities.Reminder) error { return r.db.Save(m).Error }

func (r *reminderRepo) Delete(id, uid string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
