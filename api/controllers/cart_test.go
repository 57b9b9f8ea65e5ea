package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aura-commerce/ministore-backend/api/middleware"
	"github.com/aura-commerce/ministore-backend/internal/cart"
)

type stubCartService struct {
	cart *cart.Cart
	err  error

	token   string
	added   []uuid.UUID
	deltas  map[uuid.UUID]int
	removed []uuid.UUID
	cleared bool
}

func (s *stubCartService) Get(ctx context.Context, cartToken string) (*cart.Cart, error) {
	s.token = cartToken
	return s.cart, s.err
}

func (s *stubCartService) Add(ctx context.Context, cartToken string, productID uuid.UUID) (*cart.Cart, error) {
	s.token = cartToken
	s.added = append(s.added, productID)
	return s.cart, s.err
}

func (s *stubCartService) UpdateQuantity(ctx context.Context, cartToken string, productID uuid.UUID, delta int) (*cart.Cart, error) {
	s.token = cartToken
	if s.deltas == nil {
		s.deltas = map[uuid.UUID]int{}
	}
	s.deltas[productID] = delta
	return s.cart, s.err
}

func (s *stubCartService) Remove(ctx context.Context, cartToken string, productID uuid.UUID) (*cart.Cart, error) {
	s.token = cartToken
	s.removed = append(s.removed, productID)
	return s.cart, s.err
}

func (s *stubCartService) Clear(ctx context.Context, cartToken string) error {
	s.token = cartToken
	s.cleared = true
	return s.err
}

func cartContext(token string) context.Context {
	return middleware.WithCartToken(context.Background(), token)
}

func TestGetCart(t *testing.T) {
	logg := testLogger()
	stub := &stubCartService{cart: &cart.Cart{Items: []cart.Item{}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil).WithContext(cartContext("tok-1"))
	rec := httptest.NewRecorder()
	GetCart(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.token != "tok-1" {
		t.Fatalf("expected header token to reach the service, got %q", stub.token)
	}
}

func TestAddCartItem(t *testing.T) {
	logg := testLogger()

	t.Run("rejects missing product id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{}`))
		req = req.WithContext(cartContext("tok-1"))
		rec := httptest.NewRecorder()
		AddCartItem(&stubCartService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		stub := &stubCartService{cart: &cart.Cart{Items: []cart.Item{{ProductID: id, Quantity: 1}}}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"`+id.String()+`"}`))
		req = req.WithContext(cartContext("tok-1"))
		rec := httptest.NewRecorder()
		AddCartItem(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(stub.added) != 1 || stub.added[0] != id {
			t.Fatalf("expected product to reach the service, got %+v", stub.added)
		}
	})
}

func TestUpdateCartQuantity(t *testing.T) {
	logg := testLogger()
	id := uuid.New()
	stub := &stubCartService{cart: &cart.Cart{}}

	body := `{"product_id":"` + id.String() + `","delta":-1}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items", strings.NewReader(body))
	req = req.WithContext(cartContext("tok-1"))
	rec := httptest.NewRecorder()
	UpdateCartQuantity(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.deltas[id] != -1 {
		t.Fatalf("expected delta -1, got %d", stub.deltas[id])
	}
}

func TestRemoveCartItem(t *testing.T) {
	logg := testLogger()
	id := uuid.New()
	stub := &stubCartService{cart: &cart.Cart{}}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/"+id.String(), nil)
	req = req.WithContext(middleware.WithCartToken(routeContext(t, "productId", id.String()), "tok-1"))
	rec := httptest.NewRecorder()
	RemoveCartItem(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stub.removed) != 1 || stub.removed[0] != id {
		t.Fatalf("expected remove to reach the service, got %+v", stub.removed)
	}
}

func TestClearCart(t *testing.T) {
	logg := testLogger()
	stub := &stubCartService{}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil).WithContext(cartContext("tok-1"))
	rec := httptest.NewRecorder()
	ClearCart(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !stub.cleared {
		t.Fatalf("expected clear to reach the service")
	}
}
