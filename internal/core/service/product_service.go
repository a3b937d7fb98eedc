package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/huaxing/corpsite-api/internal/core/domain"
	"github.com/huaxing/corpsite-api/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		NameZH:        input.NameZH,
		NameEN:        input.NameEN,
		DescriptionZH: input.DescriptionZH,
		DescriptionEN: input.DescriptionEN,
		Category:      input.Category,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) (*ports.ProductPage, error) {
	filter.Page, filter.Limit = clampPaging(filter.Page, filter.Limit)

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ProductPage{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.NameZH = input.NameZH
	existing.NameEN = input.NameEN
	existing.DescriptionZH = input.DescriptionZH
	existing.DescriptionEN = input.DescriptionEN
	existing.Category = input.Category
	existing.Price = input.Price
	existing.ImageURL = input.ImageURL
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// clampPaging applies the default and maximum page sizes.
func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
