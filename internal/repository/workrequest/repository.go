package workrequest

import (
	"context"

	"woodcraft-market/internal/domain"
)

type CreateRequestInput struct {
	WorkerID    string
	UserID      *string
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Description string
	BudgetRange string
	Timeline    string
}

type Repository interface {
	List(ctx context.Context) ([]domain.WorkRequest, error)
	GetByID(ctx context.Context, id string) (*domain.WorkRequest, error)
	Create(ctx context.Context, in CreateRequestInput) (*domain.WorkRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.WorkRequest, error)
}
