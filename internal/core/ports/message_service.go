package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// SubmitMessageInput is the public contact-form payload.
type SubmitMessageInput struct {
	Name    string
	Email   string
	Content string
}

// MessagePage is one page of inquiries plus the total match count.
type MessagePage struct {
	Messages []domain.Message
	Total    int64
	Page     int
	Limit    int
}

type MessageService interface {
	Submit(ctx context.Context, input SubmitMessageInput) (*domain.Message, error)
	List(ctx context.Context, filter MessageFilter) (*MessagePage, error)
	MarkRead(ctx context.Context, id string) (*domain.Message, error)
	Reply(ctx context.Context, id, reply string) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}
