package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// SettingsRepository persists the single site-settings document.
// Get on an empty store returns a zero-valued Settings, not an error.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}
