package product

import (
	"context"
	"fmt"
	"strings"

	"woodcraft-market/internal/domain"
	productrepo "woodcraft-market/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListInput mirrors the storefront's shop filters.
type ListInput struct {
	CategoryID   string
	Search       string
	FeaturedOnly bool
	InStockOnly  bool
}

func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{
		CategoryID:   strings.TrimSpace(in.CategoryID),
		Search:       strings.TrimSpace(in.Search),
		FeaturedOnly: in.FeaturedOnly,
		InStockOnly:  in.InStockOnly,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, fmt.Errorf("%w: id required", domain.ErrValidation)
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if p.PriceCents <= 0 {
		return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if p.SalePriceCents != nil && *p.SalePriceCents <= 0 {
		return fmt.Errorf("%w: sale price must be positive", domain.ErrValidation)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity must not be negative", domain.ErrValidation)
	}
	return nil
}
