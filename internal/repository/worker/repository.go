package worker

import (
	"context"

	"woodcraft-market/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Worker, error)
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	Create(ctx context.Context, worker domain.Worker) (*domain.Worker, error)
	Update(ctx context.Context, worker domain.Worker) (*domain.Worker, error)
	Delete(ctx context.Context, id string) error
	// RefreshRating recomputes the denormalized rating and review count from
	// the reviews table.
	RefreshRating(ctx context.Context, id string) error
}
