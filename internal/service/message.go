package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

// MessageService stores free-form messages. It does not inspect message
// bodies; whatever object the client posts is kept as-is.
type MessageService struct {
	repo   repository.MessageRepository
	logger *slog.Logger
}

func NewMessageService(repo repository.MessageRepository, logger *slog.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger}
}

// List returns every message, oldest first.
func (s *MessageService) List(ctx context.Context) ([]model.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/message: listing messages: %w", err)
	}
	return messages, nil
}

// Create stores body as a new message. "_id" and "createdAt" in body are
// ignored; the store assigns both.
func (s *MessageService) Create(ctx context.Context, body map[string]any) (*model.Message, error) {
	msg := model.NewMessage(body)
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("service/message: creating message: %w", err)
	}

	s.logger.Debug("message created", slog.String("id", msg.ID), slog.Int("fields", len(msg.Body)))
	return msg, nil
}

// Delete removes a message. It succeeds whether or not the id existed.
func (s *MessageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service/message: deleting message %s: %w", id, err)
	}
	return nil
}
