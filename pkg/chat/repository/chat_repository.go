package repository

import "cropcast/entities"

type ChatRepository interface {
	Save(m *entities.ChatMessage) error
	// Recent returns the newest limit rows for uid in ascending order.
	Recent(uid string, limit int) ([]entities.ChatMessage, error)
}
