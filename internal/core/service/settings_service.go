package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

type SettingsService struct {
	repo   ports.SettingsRepository
	logger zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.Get(ctx)
}

// GetPublic returns the localized subset shown on the public site.
func (s *SettingsService) GetPublic(ctx context.Context, lang string) (*ports.PublicSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	lang = domain.NormalizeLang(lang)
	name, description := settings.Localized(lang)
	return &ports.PublicSettings{
		SiteName:        name,
		SiteDescription: description,
		ICPNumber:       settings.ICPNumber,
		Language:        lang,
	}, nil
}

func (s *SettingsService) Update(ctx context.Context, input ports.UpdateSettingsInput) (*domain.Settings, error) {
	settings := &domain.Settings{
		SiteNameZH:        input.SiteNameZH,
		SiteNameEN:        input.SiteNameEN,
		SiteDescriptionZH: input.SiteDescriptionZH,
		SiteDescriptionEN: input.SiteDescriptionEN,
		ContactEmail:      input.ContactEmail,
		ICPNumber:         input.ICPNumber,
		UpdatedAt:         time.Now().UTC(),
	}

	saved, err := s.repo.Save(ctx, settings)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update settings")
		return nil, err
	}

	s.logger.Info().Msg("site settings updated")
	return saved, nil
}
