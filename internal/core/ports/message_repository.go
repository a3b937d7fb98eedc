package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// MessageFilter narrows List results. An empty Status means all statuses.
type MessageFilter struct {
	Status domain.MessageStatus
	Page   int
	Limit  int
}

// MessageRepository defines the persistence interface for visitor inquiries.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	List(ctx context.Context, filter MessageFilter) ([]domain.Message, int64, error)
	Update(ctx context.Context, message *domain.Message) error
	Delete(ctx context.Context, id string) error
}
