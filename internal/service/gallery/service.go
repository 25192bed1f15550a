package gallery

import (
	"context"
	"fmt"
	"strings"

	"woodcraft-market/internal/domain"
	galleryrepo "woodcraft-market/internal/repository/gallery"
)

type Service struct {
	repo galleryrepo.Repository
}

func New(repo galleryrepo.Repository) *Service {
	return &Service{repo: repo}
}

type ListInput struct {
	CategoryID   string
	FeaturedOnly bool
}

func (s *Service) List(ctx context.Context, in ListInput) ([]domain.GalleryItem, error) {
	return s.repo.List(ctx, galleryrepo.ListFilter{
		CategoryID:   strings.TrimSpace(in.CategoryID),
		FeaturedOnly: in.FeaturedOnly,
	})
}

func (s *Service) Create(ctx context.Context, item domain.GalleryItem) (*domain.GalleryItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, fmt.Errorf("%w: title required", domain.ErrValidation)
	}
	if strings.TrimSpace(item.ImageURL) == "" {
		return nil, fmt.Errorf("%w: image url required", domain.ErrValidation)
	}
	return s.repo.Create(ctx, item)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
