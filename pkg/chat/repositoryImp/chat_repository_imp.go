package repositoryImp

import (
	"slices"

	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/chat/repository"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Save(m *entities.ChatMessage) error { return r.db.Create(m).Error }

func (r *chatRepo) Recent(uid string, limit int) ([]entities.ChatMessage, error) {
	out := []entities.ChatMessage{}
	err := r.db.Where("user_id = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}
