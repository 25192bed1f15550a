package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"woodcraft-market/internal/cart"
	"woodcraft-market/internal/domain"
	orderrepo "woodcraft-market/internal/repository/order"
	productrepo "woodcraft-market/internal/repository/product"
	ordersvc "woodcraft-market/internal/service/order"
	productsvc "woodcraft-market/internal/service/product"

	"github.com/gin-gonic/gin"
)

type stubProductRepo struct {
	products map[string]domain.Product
}

func (s *stubProductRepo) List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubProductRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProductRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubProductRepo) UpsertByName(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

type stubOrderRepo struct {
	createErr  error
	itemsErr   error
	deleteErr  error
	created    []orderrepo.CreateOrderInput
	insertedTo []string
	deleted    []string
}

func (s *stubOrderRepo) Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, in)
	return &domain.Order{
		ID:            "order-1",
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		TotalCents:    in.TotalCents,
		Status:        domain.OrderPending,
	}, nil
}

func (s *stubOrderRepo) InsertItems(ctx context.Context, orderID string, items []orderrepo.ItemInput) error {
	if s.itemsErr != nil {
		return s.itemsErr
	}
	s.insertedTo = append(s.insertedTo, orderID)
	return nil
}

func (s *stubOrderRepo) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubOrderRepo) List(ctx context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func testRouter(t *testing.T, orderRepo *stubOrderRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sale := int64(2500)
	products := &stubProductRepo{products: map[string]domain.Product{
		"oak-table": {ID: "oak-table", Name: "Oak Table", PriceCents: 10000, InStock: true},
		"pine-bowl": {ID: "pine-bowl", Name: "Pine Bowl", PriceCents: 3000, SalePriceCents: &sale, InStock: true},
	}}

	deps := Deps{
		Carts:      cart.NewManager(time.Hour),
		ProductSvc: productsvc.New(products),
		OrderSvc:   ordersvc.New(orderRepo),
	}
	return buildRouter(log.New(io.Discard, "", 0), nil, deps, nil)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(cartSessionHeader, session)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode cart response: %v", err)
	}
	return resp
}

func TestCartFlow(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "", map[string]any{
		"productId": "oak-table",
		"quantity":  2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add item: status = %d, want 200", rec.Code)
	}
	session := rec.Header().Get(cartSessionHeader)
	if session == "" {
		t.Fatal("add item: no session header returned")
	}

	// The sale price applies because it is below the list price.
	rec = doJSON(t, router, http.MethodPost, "/api/cart/items", session, map[string]any{
		"productId": "pine-bowl",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add second item: status = %d, want 200", rec.Code)
	}
	resp := decodeCart(t, rec)
	if len(resp.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(resp.Lines))
	}
	if resp.TotalCents != 2*10000+2500 {
		t.Errorf("totalCents = %d, want %d", resp.TotalCents, 2*10000+2500)
	}
	if resp.Total != "225.00" {
		t.Errorf("total = %q, want %q", resp.Total, "225.00")
	}

	rec = doJSON(t, router, http.MethodPatch, "/api/cart/items/oak-table", session, map[string]any{
		"quantity": 0,
	})
	resp = decodeCart(t, rec)
	if len(resp.Lines) != 1 || resp.Lines[0].ProductID != "pine-bowl" {
		t.Fatalf("after zero-quantity update, lines = %+v, want only pine-bowl", resp.Lines)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/cart", session, nil)
	resp = decodeCart(t, rec)
	if len(resp.Lines) != 0 || resp.TotalCents != 0 {
		t.Errorf("after clear, lines = %d totalCents = %d, want empty", len(resp.Lines), resp.TotalCents)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "", map[string]any{
		"productId": "no-such-product",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	repo := &stubOrderRepo{}
	router := testRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "", map[string]any{
		"productId": "oak-table",
	})
	session := rec.Header().Get(cartSessionHeader)

	rec = doJSON(t, router, http.MethodPost, "/api/checkout", session, map[string]any{
		"name":  "Jo Carver",
		"email": "jo@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(repo.created) != 1 || len(repo.insertedTo) != 1 {
		t.Fatalf("repo calls: created = %d inserted = %d, want 1 and 1", len(repo.created), len(repo.insertedTo))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", session, nil)
	resp := decodeCart(t, rec)
	if len(resp.Lines) != 0 {
		t.Errorf("cart not cleared after checkout: %d lines", len(resp.Lines))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	repo := &stubOrderRepo{}
	router := testRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/checkout", "", map[string]any{
		"name":  "Jo Carver",
		"email": "jo@example.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(repo.created) != 0 {
		t.Errorf("order header written for empty cart")
	}
}

func TestCheckoutPartialFailureKeepsCart(t *testing.T) {
	repo := &stubOrderRepo{
		itemsErr:  errors.New("items insert broke"),
		deleteErr: errors.New("delete broke too"),
	}
	router := testRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "", map[string]any{
		"productId": "oak-table",
	})
	session := rec.Header().Get(cartSessionHeader)

	rec = doJSON(t, router, http.MethodPost, "/api/checkout", session, map[string]any{
		"name":  "Jo Carver",
		"email": "jo@example.com",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	var body struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.OrderID != "order-1" {
		t.Errorf("orderId = %q, want order-1", body.OrderID)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", session, nil)
	resp := decodeCart(t, rec)
	if len(resp.Lines) != 1 {
		t.Errorf("cart was cleared despite failed checkout: %d lines", len(resp.Lines))
	}
}

func TestCheckoutCompensatedFailureKeepsCart(t *testing.T) {
	repo := &stubOrderRepo{itemsErr: errors.New("items insert broke")}
	router := testRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", "", map[string]any{
		"productId": "oak-table",
	})
	session := rec.Header().Get(cartSessionHeader)

	rec = doJSON(t, router, http.MethodPost, "/api/checkout", session, map[string]any{
		"name":  "Jo Carver",
		"email": "jo@example.com",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("orphaned header not compensated: %d deletes", len(repo.deleted))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", session, nil)
	resp := decodeCart(t, rec)
	if len(resp.Lines) != 1 {
		t.Errorf("cart was cleared despite failed checkout: %d lines", len(resp.Lines))
	}
}

func TestAdminRequiresAuth(t *testing.T) {
	router := testRouter(t, &stubOrderRepo{})

	rec := doJSON(t, router, http.MethodGet, "/api/admin/orders", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
