package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// ProductInput carries the editable fields of a catalog entry.
type ProductInput struct {
	NameZH        string
	NameEN        string
	DescriptionZH string
	DescriptionEN string
	Category      string
	Price         float64
	ImageURL      string
}

// ProductPage is one page of catalog results plus the total match count,
// so handlers can compute pagination metadata.
type ProductPage struct {
	Products []domain.Product
	Total    int64
	Page     int
	Limit    int
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) (*ProductPage, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
