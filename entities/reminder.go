package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reminder struct {
	ID           string `gorm:"primaryKey" json:"id"`
	UserID       string `gorm:"index" json:"user_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ReminderDate string `gorm:"index" json:"reminder_date"` // YYYY-MM-DD
	IsCompleted  bool   `json:"is_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reminder) TableName() string { return "seasonal_reminders" }

func (r *Reminder) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
