package product

import (
	"context"

	"woodcraft-market/internal/domain"
)

// ListFilter narrows the product listing. Zero values mean "no filter".
type ListFilter struct {
	CategoryID   string
	Search       string
	FeaturedOnly bool
	InStockOnly  bool
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	UpsertByName(ctx context.Context, product domain.Product) (*domain.Product, error)
}
