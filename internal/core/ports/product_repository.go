package ports

import (
	"context"

	"github.com/huaxing/corpsite-api/internal/core/domain"
)

// ProductFilter narrows List results. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Page     int
	Limit    int
}

// ProductRepository defines the persistence interface for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
