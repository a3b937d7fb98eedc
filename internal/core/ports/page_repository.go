package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// PageRepository defines the persistence interface for bilingual pages.
type PageRepository interface {
	FindByKey(ctx context.Context, pageKey string) (*domain.Page, error)
	List(ctx context.Context) ([]domain.Page, error)
	Upsert(ctx context.Context, page *domain.Page) (*domain.Page, error)
}
