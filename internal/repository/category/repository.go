package category

import (
	"context"

	"woodcraft-market/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	UpsertBySlug(ctx context.Context, category domain.Category) (*domain.Category, error)
}
