package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

type MessageService struct {
	repo   ports.MessageRepository
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger}
}

// Submit records a visitor inquiry and assigns it a reference code the
// visitor can quote in follow-up correspondence.
func (s *MessageService) Submit(ctx context.Context, input ports.SubmitMessageInput) (*domain.Message, error) {
	message := &domain.Message{
		Reference: uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Content:   input.Content,
		Status:    domain.MessageNew,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, message)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store inquiry")
		return nil, err
	}

	s.logger.Info().Str("reference", created.Reference).Msg("inquiry submitted")
	return created, nil
}

func (s *MessageService) List(ctx context.Context, filter ports.MessageFilter) (*ports.MessagePage, error) {
	filter.Page, filter.Limit = clampPaging(filter.Page, filter.Limit)

	messages, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.MessagePage{
		Messages: messages,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

// MarkRead transitions an inquiry to "read". Marking an already-read
// message again is a no-op rather than an error.
func (s *MessageService) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if message.Status == domain.MessageRead {
		return message, nil
	}
	if !message.Status.CanTransitionTo(domain.MessageRead) {
		return nil, domain.ErrInvalidTransition
	}

	message.Status = domain.MessageRead
	if err := s.repo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *MessageService) Reply(ctx context.Context, id, reply string) (*domain.Message, error) {
	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !message.Status.CanTransitionTo(domain.MessageReplied) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	message.Status = domain.MessageReplied
	message.Reply = reply
	message.RepliedAt = &now

	if err := s.repo.Update(ctx, message); err != nil {
		s.logger.Error().Err(err).Str("message_id", id).Msg("failed to store reply")
		return nil, err
	}

	s.logger.Info().Str("message_id", id).Str("reference", message.Reference).Msg("inquiry replied")
	return message, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
