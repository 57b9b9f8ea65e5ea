package checkout

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aura-commerce/ministore-backend/internal/cart"
	"github.com/aura-commerce/ministore-backend/internal/catalog"
	"github.com/aura-commerce/ministore-backend/internal/orders"
	"github.com/aura-commerce/ministore-backend/pkg/config"
	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCarts struct {
	carts    map[string]*cart.Cart
	cleared  []string
	clearErr error
}

func (f *fakeCarts) Get(ctx context.Context, cartToken string) (*cart.Cart, error) {
	if c, ok := f.carts[cartToken]; ok {
		return c, nil
	}
	return &cart.Cart{Items: []cart.Item{}}, nil
}

func (f *fakeCarts) Clear(ctx context.Context, cartToken string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = append(f.cleared, cartToken)
	delete(f.carts, cartToken)
	return nil
}

type captureOrdersRepo struct {
	created []*models.Order
	fail    error
}

func (c *captureOrdersRepo) WithTx(tx *gorm.DB) orders.Repository { return c }

func (c *captureOrdersRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	c.created = append(c.created, order)
	return order, nil
}

func (c *captureOrdersRepo) List(ctx context.Context) ([]models.Order, error) { return nil, nil }
func (c *captureOrdersRepo) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return nil, nil
}
func (c *captureOrdersRepo) FindByIDOrTrackingID(ctx context.Context, token string) (*models.Order, error) {
	return nil, gorm.ErrRecordNotFound
}
func (c *captureOrdersRepo) UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) error {
	return gorm.ErrRecordNotFound
}

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeInventory struct {
	stock map[uuid.UUID]int
}

func (f *fakeInventory) WithTx(tx *gorm.DB) catalog.Repository { return f }

func (f *fakeInventory) DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error) {
	if f.stock[id] < qty {
		return false, nil
	}
	f.stock[id] -= qty
	return true, nil
}

func (f *fakeInventory) List(ctx context.Context) ([]models.Product, error) { return nil, nil }
func (f *fakeInventory) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeInventory) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	return product, nil
}
func (f *fakeInventory) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return nil
}
func (f *fakeInventory) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func filledCart(productID uuid.UUID) *cart.Cart {
	return &cart.Cart{Items: []cart.Item{
		{
			ProductID:  productID,
			Name:       "Aura Pro Max Headphones",
			PriceCents: 55000,
			Category:   enums.ProductCategoryElectronics,
			Quantity:   2,
		},
		{
			ProductID:  uuid.New(),
			Name:       "Pro-Grip Yoga Mat",
			PriceCents: 5200,
			Category:   enums.ProductCategoryWellness,
			Quantity:   1,
		},
	}}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	productID := uuid.New()
	carts := &fakeCarts{carts: map[string]*cart.Cart{"tok-1": filledCart(productID)}}
	repo := &captureOrdersRepo{}

	svc, err := NewService(carts, repo, passthroughTx{}, nil, config.CheckoutConfig{}, nil)
	require.NoError(t, err)
	svc.(*service).now = func() time.Time {
		return time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	}

	order, err := svc.PlaceOrder(context.Background(), Input{
		CartToken:        "tok-1",
		CustomerName:     "  Ali Ahmed ",
		CustomerEmail:    "ali@example.com",
		ShippingOptionID: "express",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"), "order id %q", order.ID)
	assert.True(t, strings.HasPrefix(order.TrackingID, "TRK-"), "tracking id %q", order.TrackingID)
	assert.Equal(t, "Ali Ahmed", order.Customer)
	require.NotNil(t, order.CustomerEmail)
	assert.Equal(t, "ali@example.com", *order.CustomerEmail)
	assert.Equal(t, enums.OrderStatusProcessing, order.Status)
	assert.Equal(t, "09/03/2026", order.PlacedOn)

	// 2x55000 + 5200 + 1500 express
	assert.Equal(t, 116700, order.TotalCents)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 110000, order.Items[0].LineTotalCents)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"tok-1"}, carts.cleared)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	carts := &fakeCarts{carts: map[string]*cart.Cart{}}
	repo := &captureOrdersRepo{}

	svc, err := NewService(carts, repo, passthroughTx{}, nil, config.CheckoutConfig{}, nil)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), Input{
		CartToken:        "tok-1",
		CustomerName:     "Ali Ahmed",
		ShippingOptionID: "standard",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Empty(t, repo.created)
	assert.Empty(t, carts.cleared)
}

func TestPlaceOrderValidation(t *testing.T) {
	carts := &fakeCarts{carts: map[string]*cart.Cart{"tok-1": filledCart(uuid.New())}}
	svc, err := NewService(carts, &captureOrdersRepo{}, passthroughTx{}, nil, config.CheckoutConfig{}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.PlaceOrder(ctx, Input{CustomerName: "Ali", ShippingOptionID: "standard"})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.PlaceOrder(ctx, Input{CartToken: "tok-1", ShippingOptionID: "standard"})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.PlaceOrder(ctx, Input{CartToken: "tok-1", CustomerName: "Ali", ShippingOptionID: "drone"})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestPlaceOrderDecrementsStockWhenEnabled(t *testing.T) {
	productID := uuid.New()
	cartData := &cart.Cart{Items: []cart.Item{{
		ProductID:  productID,
		Name:       "Temperature Control Mug 2",
		PriceCents: 15000,
		Quantity:   2,
	}}}
	carts := &fakeCarts{carts: map[string]*cart.Cart{"tok-1": cartData}}
	inventory := &fakeInventory{stock: map[uuid.UUID]int{productID: 5}}

	svc, err := NewService(carts, &captureOrdersRepo{}, passthroughTx{}, inventory, config.CheckoutConfig{DecrementStock: true}, nil)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), Input{
		CartToken:        "tok-1",
		CustomerName:     "Ali Ahmed",
		ShippingOptionID: "standard",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, inventory.stock[productID])
}

func TestPlaceOrderInsufficientStockKeepsCart(t *testing.T) {
	productID := uuid.New()
	cartData := &cart.Cart{Items: []cart.Item{{
		ProductID:  productID,
		Name:       "Classic Chronograph Watch",
		PriceCents: 22000,
		Quantity:   3,
	}}}
	carts := &fakeCarts{carts: map[string]*cart.Cart{"tok-1": cartData}}
	inventory := &fakeInventory{stock: map[uuid.UUID]int{productID: 1}}

	svc, err := NewService(carts, &captureOrdersRepo{}, passthroughTx{}, inventory, config.CheckoutConfig{DecrementStock: true}, nil)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), Input{
		CartToken:        "tok-1",
		CustomerName:     "Ali Ahmed",
		ShippingOptionID: "standard",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Empty(t, carts.cleared)
	assert.Equal(t, 1, inventory.stock[productID])
}

func TestPlaceOrderGeneratesDistinctTokens(t *testing.T) {
	carts := &fakeCarts{carts: map[string]*cart.Cart{
		"tok-1": filledCart(uuid.New()),
		"tok-2": filledCart(uuid.New()),
	}}
	repo := &captureOrdersRepo{}

	svc, err := NewService(carts, repo, passthroughTx{}, nil, config.CheckoutConfig{}, nil)
	require.NoError(t, err)

	first, err := svc.PlaceOrder(context.Background(), Input{
		CartToken: "tok-1", CustomerName: "Ali Ahmed", ShippingOptionID: "standard",
	})
	require.NoError(t, err)
	second, err := svc.PlaceOrder(context.Background(), Input{
		CartToken: "tok-2", CustomerName: "Ali Ahmed", ShippingOptionID: "standard",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.TrackingID, second.TrackingID)
	assert.NotEqual(t, first.ID, first.TrackingID)
}

func TestPlaceOrderClearFailureStillReturnsOrder(t *testing.T) {
	carts := &fakeCarts{
		carts:    map[string]*cart.Cart{"tok-1": filledCart(uuid.New())},
		clearErr: gorm.ErrInvalidDB,
	}
	repo := &captureOrdersRepo{}

	var logs bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: &logs})

	svc, err := NewService(carts, repo, passthroughTx{}, nil, config.CheckoutConfig{}, logg)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(context.Background(), Input{
		CartToken:        "tok-1",
		CustomerName:     "Ali Ahmed",
		ShippingOptionID: "standard",
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	require.Len(t, repo.created, 1)
	assert.Contains(t, logs.String(), "checkout.cart_clear_failed")
}

func TestPlaceOrderRepoFailureKeepsCart(t *testing.T) {
	carts := &fakeCarts{carts: map[string]*cart.Cart{"tok-1": filledCart(uuid.New())}}
	repo := &captureOrdersRepo{fail: gorm.ErrInvalidTransaction}

	svc, err := NewService(carts, repo, passthroughTx{}, nil, config.CheckoutConfig{}, nil)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), Input{
		CartToken:        "tok-1",
		CustomerName:     "Ali Ahmed",
		ShippingOptionID: "standard",
	})
	require.Error(t, err)
	assert.Empty(t, carts.cleared)
}
