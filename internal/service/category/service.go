package category

import (
	"context"
	"fmt"
	"strings"

	"woodcraft-market/internal/domain"
	categoryrepo "woodcraft-market/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c.Name)), " ", "-")
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
