package review

import (
	"context"

	"woodcraft-market/internal/domain"
)

type CreateReviewInput struct {
	WorkerID string
	UserID   *string
	UserName string
	Rating   int
	Comment  string
}

type Repository interface {
	ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error)
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
}
