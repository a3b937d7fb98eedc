package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// UpdateSettingsInput carries the editable site-settings fields.
type UpdateSettingsInput struct {
	SiteNameZH        string
	SiteNameEN        string
	SiteDescriptionZH string
	SiteDescriptionEN string
	ContactEmail      string
	ICPNumber         string
}

// PublicSettings is the localized subset exposed without authentication.
type PublicSettings struct {
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description"`
	ICPNumber       string `json:"icp_number"`
	Language        string `json:"language"`
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	GetPublic(ctx context.Context, lang string) (*PublicSettings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error)
}
