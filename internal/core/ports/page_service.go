package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// UpdatePageInput carries the editable fields of a page. The upsert keyed on
// PageKey lets the admin area create a page the first time it is edited.
type UpdatePageInput struct {
	PageKey   string
	TitleZH   string
	TitleEN   string
	ContentZH string
	ContentEN string
}

// LocalizedPage is the public, single-language view of a page.
type LocalizedPage struct {
	PageKey   string `json:"page_key"`
	Language  string `json:"language"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at"`
}

type PageService interface {
	GetLocalized(ctx context.Context, pageKey, lang string) (*LocalizedPage, error)
	Get(ctx context.Context, pageKey string) (*domain.Page, error)
	List(ctx context.Context) ([]domain.Page, error)
	Update(ctx context.Context, input UpdatePageInput) (*domain.Page, error)
}
