package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

const minPasswordLength = 8

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || len(input.Password) < minPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("account created")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Delete removes an account. The last remaining admin cannot be deleted,
// otherwise the admin area would lock itself out.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleAdmin {
		users, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		admins := 0
		for _, u := range users {
			if u.Role == domain.RoleAdmin {
				admins++
			}
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("username", user.Username).Msg("account deleted")
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, id, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, id, string(hash))
}

// EnsureBootstrapAdmin seeds the first admin account when the user store is
// empty, so a fresh deployment can be logged into.
func (s *UserService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 || username == "" || password == "" {
		return nil
	}

	_, err = s.Create(ctx, ports.CreateUserInput{
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return err
	}

	s.logger.Warn().Str("username", username).Msg("bootstrap admin created; change the password after first login")
	return nil
}
