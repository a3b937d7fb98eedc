package ports

import (
	"context"
	"time"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// AuthService implements login and server-side token revocation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the token identified by jti until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

// TokenDenylist abstracts the revocation store (Redis).
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
