package service

import (
	"context"
	"fmt"
	"strings"

	"woodcraft-market/internal/domain"
	servicerepo "woodcraft-market/internal/repository/service"
)

type Service struct {
	repo servicerepo.Repository
}

func New(repo servicerepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListInput mirrors the storefront's services-page filters. Public listings
// only show available offerings.
type ListInput struct {
	CategoryID    string
	Search        string
	AvailableOnly bool
}

func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Service, error) {
	return s.repo.List(ctx, servicerepo.ListFilter{
		CategoryID:    strings.TrimSpace(in.CategoryID),
		Search:        strings.TrimSpace(in.Search),
		AvailableOnly: in.AvailableOnly,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, svc domain.Service) (*domain.Service, error) {
	if err := validate(svc); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, svc)
}

func (s *Service) Update(ctx context.Context, svc domain.Service) (*domain.Service, error) {
	if strings.TrimSpace(svc.ID) == "" {
		return nil, fmt.Errorf("%w: id required", domain.ErrValidation)
	}
	if err := validate(svc); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, svc)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(svc domain.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if svc.MinPriceCents <= 0 {
		return fmt.Errorf("%w: min price must be positive", domain.ErrValidation)
	}
	if svc.MaxPriceCents != nil && *svc.MaxPriceCents < svc.MinPriceCents {
		return fmt.Errorf("%w: max price must not be below min price", domain.ErrValidation)
	}
	return nil
}
