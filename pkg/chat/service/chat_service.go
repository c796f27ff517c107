package service

import (
	"context"

	"cropcast/entities"
)

type ChatService interface {
	Send(ctx context.Context, uid, message string) (string, error)
	History(uid string, limit int) ([]entities.ChatMessage, error)
}
