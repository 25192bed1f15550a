package order

import (
	"context"
	"errors"
	"testing"

	"woodcraft-market/internal/cart"
	"woodcraft-market/internal/domain"
	orderrepo "woodcraft-market/internal/repository/order"
)

type stubRepo struct {
	created      *domain.Order
	createErr    error
	createCalls  int
	insertErr    error
	insertCalls  int
	lastInsertID string
	lastItems    []orderrepo.ItemInput
	deleteErr    error
	deleteCalls  int
	lastDeleteID string
	getOrder     *domain.Order
	getErr       error
	updated      *domain.Order
	updateErr    error
	lastStatus   domain.OrderStatus
	listOrders   []domain.Order
	listErr      error
}

func (s *stubRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *s.created
	out.UserID = in.UserID
	out.CustomerName = in.CustomerName
	out.CustomerEmail = in.CustomerEmail
	out.TotalCents = in.TotalCents
	return &out, nil
}

func (s *stubRepo) InsertItems(_ context.Context, orderID string, items []orderrepo.ItemInput) error {
	s.insertCalls++
	s.lastInsertID = orderID
	s.lastItems = items
	return s.insertErr
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	s.deleteCalls++
	s.lastDeleteID = id
	return s.deleteErr
}

func (s *stubRepo) List(_ context.Context) ([]domain.Order, error) {
	return s.listOrders, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubRepo) UpdateStatus(_ context.Context, _ string, status domain.OrderStatus) (*domain.Order, error) {
	s.lastStatus = status
	return s.updated, s.updateErr
}

func snapshotFixture() cart.Snapshot {
	// 2*10.00 + 1*20.00 = 40.00
	return cart.Snapshot{
		Lines: []cart.Line{
			{ProductID: "p1", ProductName: "Oak Shelf", Quantity: 2, UnitPriceCents: 1000},
			{ProductID: "p2", ProductName: "Walnut Tray", Quantity: 1, UnitPriceCents: 2000},
		},
		TotalItems: 3,
		TotalCents: 4000,
	}
}

func info() CustomerInfo {
	return CustomerInfo{Name: "Jo Smith", Email: "jo@example.com"}
}

func TestSubmit_EmptyCartRejectedBeforeStore(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	_, err := svc.Submit(context.Background(), info(), cart.Snapshot{})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if repo.createCalls != 0 || repo.insertCalls != 0 {
		t.Fatalf("expected no repo calls, got create=%d insert=%d", repo.createCalls, repo.insertCalls)
	}
}

func TestSubmit_MissingCustomerRejected(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	for _, in := range []CustomerInfo{
		{Name: "", Email: "jo@example.com"},
		{Name: "Jo", Email: "   "},
	} {
		if _, err := svc.Submit(context.Background(), in, snapshotFixture()); !errors.Is(err, ErrMissingCustomer) {
			t.Fatalf("expected ErrMissingCustomer for %+v, got %v", in, err)
		}
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no repo calls, got %d", repo.createCalls)
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := &stubRepo{
		created: &domain.Order{ID: "ord-1", Status: domain.OrderPending},
	}
	svc := &Service{repo: repo}

	created, err := svc.Submit(context.Background(), info(), snapshotFixture())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.ID != "ord-1" || created.TotalCents != 4000 {
		t.Fatalf("unexpected order %+v", created)
	}
	if repo.lastInsertID != "ord-1" {
		t.Fatalf("items inserted for wrong order %q", repo.lastInsertID)
	}
	if len(repo.lastItems) != 2 {
		t.Fatalf("expected 2 items in one batch, got %d", len(repo.lastItems))
	}
	if repo.lastItems[0].UnitPriceCents != 1000 || repo.lastItems[1].UnitPriceCents != 2000 {
		t.Fatalf("item prices not taken from snapshot: %+v", repo.lastItems)
	}
	if repo.lastItems[0].ProductName != "Oak Shelf" {
		t.Fatalf("product name not snapshotted: %+v", repo.lastItems[0])
	}
	if repo.deleteCalls != 0 {
		t.Fatalf("unexpected compensation on success")
	}
}

func TestSubmit_HeaderFailureSkipsItems(t *testing.T) {
	storeErr := errors.New("db down")
	repo := &stubRepo{createErr: storeErr}
	svc := &Service{repo: repo}

	_, err := svc.Submit(context.Background(), info(), snapshotFixture())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("items must not be attempted after header failure")
	}
}

func TestSubmit_ItemsFailureCompensates(t *testing.T) {
	itemsErr := errors.New("items insert failed")
	repo := &stubRepo{
		created:   &domain.Order{ID: "ord-2", Status: domain.OrderPending},
		insertErr: itemsErr,
	}
	svc := &Service{repo: repo}

	_, err := svc.Submit(context.Background(), info(), snapshotFixture())
	if !errors.Is(err, itemsErr) {
		t.Fatalf("expected wrapped items error, got %v", err)
	}
	var partial *PartialError
	if errors.As(err, &partial) {
		t.Fatalf("compensated failure must not be a PartialError")
	}
	if repo.deleteCalls != 1 || repo.lastDeleteID != "ord-2" {
		t.Fatalf("expected orphaned header delete, got calls=%d id=%q", repo.deleteCalls, repo.lastDeleteID)
	}
}

func TestSubmit_CompensationFailureIsPartialError(t *testing.T) {
	repo := &stubRepo{
		created:   &domain.Order{ID: "ord-3", Status: domain.OrderPending},
		insertErr: errors.New("items insert failed"),
		deleteErr: errors.New("delete failed too"),
	}
	svc := &Service{repo: repo}

	_, err := svc.Submit(context.Background(), info(), snapshotFixture())
	var partial *PartialError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialError, got %v", err)
	}
	if partial.OrderID != "ord-3" {
		t.Fatalf("expected orphaned order id ord-3, got %q", partial.OrderID)
	}
}

func TestUpdateStatus_AllowsLegalTransition(t *testing.T) {
	repo := &stubRepo{
		getOrder: &domain.Order{ID: "ord-1", Status: domain.OrderPending},
		updated:  &domain.Order{ID: "ord-1", Status: domain.OrderProcessing},
	}
	svc := &Service{repo: repo}

	updated, err := svc.UpdateStatus(context.Background(), "ord-1", domain.OrderProcessing)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.OrderProcessing || repo.lastStatus != domain.OrderProcessing {
		t.Fatalf("unexpected status %+v", updated)
	}
}

func TestUpdateStatus_RejectsIllegalTransition(t *testing.T) {
	repo := &stubRepo{
		getOrder: &domain.Order{ID: "ord-1", Status: domain.OrderDelivered},
	}
	svc := &Service{repo: repo}

	if _, err := svc.UpdateStatus(context.Background(), "ord-1", domain.OrderPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "ord-1", "bogus"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for unknown status, got %v", err)
	}
}
