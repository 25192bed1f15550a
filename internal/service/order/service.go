package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"woodcraft-market/internal/cart"
	"woodcraft-market/internal/domain"
	orderrepo "woodcraft-market/internal/repository/order"
)

var (
	// ErrEmptyCart rejects a checkout with no lines before any store call.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingCustomer rejects a checkout without a name or email.
	ErrMissingCustomer = errors.New("customer name and email required")
	// ErrInvalidTransition rejects an order status change the transition
	// table does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// PartialError reports the one failure mode callers must tell apart from a
// plain store error: the order header exists but its items were never
// written, and the compensating header delete failed too. The cart must not
// be cleared in this case, and the order id is kept for reconciliation.
type PartialError struct {
	OrderID string
	Err     error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("order %s created without items: %v", e.OrderID, e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

type Service struct {
	repo repository
}

type repository interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	InsertItems(ctx context.Context, orderID string, items []orderrepo.ItemInput) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CustomerInfo carries the checkout form fields. UserID is set when the
// request is authenticated; guest checkout leaves it nil.
type CustomerInfo struct {
	UserID          *string
	Name            string
	Email           string
	Phone           string
	ShippingAddress string
}

// Submit turns a cart snapshot into an order header plus its line items. The
// header is written first; items follow as a single batch referencing the new
// order id, with name and price taken from the snapshot rather than the live
// catalog. If the items write fails the orphaned header is deleted again; if
// even that fails the caller gets a *PartialError. Submit never touches the
// cart itself; the caller clears it, and only on full success.
func (s *Service) Submit(ctx context.Context, info CustomerInfo, snap cart.Snapshot) (*domain.Order, error) {
	if snap.Empty() {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Email) == "" {
		return nil, ErrMissingCustomer
	}

	created, err := s.repo.Create(ctx, orderrepo.CreateOrderInput{
		UserID:          info.UserID,
		CustomerName:    strings.TrimSpace(info.Name),
		CustomerEmail:   strings.TrimSpace(info.Email),
		CustomerPhone:   strings.TrimSpace(info.Phone),
		ShippingAddress: strings.TrimSpace(info.ShippingAddress),
		TotalCents:      snap.TotalCents,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	items := make([]orderrepo.ItemInput, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		productID := line.ProductID
		items = append(items, orderrepo.ItemInput{
			ProductID:      &productID,
			ProductName:    line.ProductName,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	if err := s.repo.InsertItems(ctx, created.ID, items); err != nil {
		if delErr := s.repo.Delete(ctx, created.ID); delErr != nil {
			return nil, &PartialError{OrderID: created.ID, Err: err}
		}
		return nil, fmt.Errorf("insert order items: %w", err)
	}

	created.Items = hydrateItems(created.ID, items)
	return created, nil
}

func hydrateItems(orderID string, items []orderrepo.ItemInput) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItem{
			OrderID:        orderID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return out
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an order through the status graph, rejecting transitions
// the table does not allow (delivered and cancelled are terminal).
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(current.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
