package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// CreateUserInput carries the fields for a new admin-area account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, id, newPassword string) error
}
