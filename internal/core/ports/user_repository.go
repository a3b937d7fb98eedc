package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// UserRepository defines the persistence interface for admin accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}
