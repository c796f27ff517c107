package serviceImp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"cropcast/entities"
	"cropcast/logger"
	"cropcast/pkg/ai"
	"cropcast/pkg/apperr"
	"cropcast/pkg/chat"
	"cropcast/pkg/chat/repository"
	"cropcast/pkg/chat/service"
	"cropcast/pkg/metrics"
)

type chatSvc struct {
	repo repository.ChatRepository
	llm  ai.Client
}

func NewChatService(repo repository.ChatRepository, llm ai.Client) service.ChatService {
	return &chatSvc{repo: repo, llm: llm}
}

func (s *chatSvc) Send(ctx context.Context, uid, message string) (string, error) {
	if uid == "" {
		return "", apperr.ErrUnauthorized
	}
	if strings.TrimSpace(message) == "" {
		return "", apperr.Invalid("Message is required")
	}

	answer, err := s.llm.Generate(ctx, chat.BuildPrompt(message))
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return "", apperr.Wrap(apperr.ErrConfig, "Google AI API key not configured")
		}
		metrics.GeneratorCalls.WithLabelValues("chat", metrics.Failed).Inc()
		logger.Error("chat generator failed", zap.String("uid", uid), zap.Error(err))
		return "", apperr.Wrap(apperr.ErrUpstream, "Google AI API error: %v", err)
	}
	metrics.GeneratorCalls.WithLabelValues("chat", metrics.OK).Inc()
	if strings.TrimSpace(answer) == "" {
		answer = chat.EmptyReply
	}

	if err := s.repo.Save(&entities.ChatMessage{UserID: uid, Message: message, Response: answer}); err != nil {
		metrics.RowsDropped.WithLabelValues("chat_messages").Inc()
		logger.Error("saving chat message", zap.String("uid", uid), zap.Error(err))
	}
	return answer, nil
}

func (s *chatSvc) History(uid string, limit int) ([]entities.ChatMessage, error) {
	if limit <= 0 || limit > chat.HistoryLimit {
		limit = chat.HistoryLimit
	}
	return s.repo.Recent(uid, limit)
}
