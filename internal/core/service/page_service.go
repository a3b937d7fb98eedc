package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

type PageService struct {
	repo   ports.PageRepository
	logger zerolog.Logger
}

func NewPageService(repo ports.PageRepository, logger zerolog.Logger) *PageService {
	return &PageService{repo: repo, logger: logger}
}

// GetLocalized returns the single-language public view of a page.
func (s *PageService) GetLocalized(ctx context.Context, pageKey, lang string) (*ports.LocalizedPage, error) {
	page, err := s.repo.FindByKey(ctx, pageKey)
	if err != nil {
		return nil, err
	}

	lang = domain.NormalizeLang(lang)
	title, content := page.Localized(lang)
	return &ports.LocalizedPage{
		PageKey:   page.PageKey,
		Language:  lang,
		Title:     title,
		Content:   content,
		UpdatedAt: page.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *PageService) Get(ctx context.Context, pageKey string) (*domain.Page, error) {
	return s.repo.FindByKey(ctx, pageKey)
}

func (s *PageService) List(ctx context.Context) ([]domain.Page, error) {
	return s.repo.List(ctx)
}

// Update upserts the page content keyed on PageKey.
func (s *PageService) Update(ctx context.Context, input ports.UpdatePageInput) (*domain.Page, error) {
	page := &domain.Page{
		PageKey:   input.PageKey,
		TitleZH:   input.TitleZH,
		TitleEN:   input.TitleEN,
		ContentZH: input.ContentZH,
		ContentEN: input.ContentEN,
		UpdatedAt: time.Now().UTC(),
	}

	saved, err := s.repo.Upsert(ctx, page)
	if err != nil {
		s.logger.Error().Err(err).Str("page_key", input.PageKey).Msg("failed to update page")
		return nil, err
	}

	s.logger.Info().Str("page_key", saved.PageKey).Msg("page updated")
	return saved, nil
}
