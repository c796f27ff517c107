package service

import "cropcast/entities"

type ReminderService interface {
	List(uid string) ([]ReminderView, error)
	Create(r *entities.Reminder) (*ReminderView, error)
	UpdatePartial(id, uid string, patch ReminderPatch) (*ReminderView, error)
	Delete(id, uid string) error
}

// ReminderView is a reminder as returned to clients.
type ReminderView struct {
	entities.Reminder
	PastDue bool `json:"past_due"`
}

type ReminderPatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ReminderDate *string `json:"reminder_date"`
	IsCompleted  *bool   `json:"is_completed"`
}
