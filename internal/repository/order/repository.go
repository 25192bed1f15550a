package order

import (
	"context"

	"woodcraft-market/internal/domain"
)

type CreateOrderInput struct {
	UserID          *string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	TotalCents      int64
}

type ItemInput struct {
	ProductID      *string
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	InsertItems(ctx context.Context, orderID string, items []ItemInput) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
