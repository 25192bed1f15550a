package gallery

import (
	"context"

	"woodcraft-market/internal/domain"
)

// ListFilter narrows the gallery listing. Zero values mean "no filter".
type ListFilter struct {
	CategoryID   string
	FeaturedOnly bool
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.GalleryItem, error)
	Create(ctx context.Context, item domain.GalleryItem) (*domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}
