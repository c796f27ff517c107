package repository

import "cropcast/entities"

type ReminderRepository interface {
	ListByUser(uid string) ([]entities.Reminder, error)
	FindByID(id, uid string) (*entities.Reminder, error)
	Create(r *entities.Reminder) error
	Update(r *entities.Reminder) error
	Delete(id, uid string) error
}
