package service

import (
	"context"

	"woodcraft-market/internal/domain"
)

// ListFilter narrows the service listing. Zero values mean "no filter".
type ListFilter struct {
	CategoryID    string
	Search        string
	AvailableOnly bool
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, service domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}
