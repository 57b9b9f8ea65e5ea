package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/aura-commerce/ministore-backend/internal/shipping"
	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"go.uber.org/multierr"
)

type productLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type orderLister interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// Snapshot is the single payload the app shell boots from.
type Snapshot struct {
	Products        []models.Product  `json:"products"`
	Orders          []models.Order    `json:"orders"`
	ShippingOptions []shipping.Option `json:"shippingOptions"`
}

// Service assembles the boot snapshot.
type Service interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type service struct {
	products productLister
	orders   orderLister
}

// NewService builds a storefront snapshot service.
func NewService(products productLister, orders orderLister) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product lister required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order lister required")
	}
	return &service{products: products, orders: orders}, nil
}

// Snapshot loads products and orders concurrently. A failure on either side
// fails the whole snapshot: the shell renders from a consistent view or not
// at all.
func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		wg       sync.WaitGroup
		products []models.Product
		orders   []models.Order
		prodErr  error
		orderErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, prodErr = s.products.ListProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		orders, orderErr = s.orders.ListOrders(ctx)
	}()
	wg.Wait()

	if err := multierr.Combine(prodErr, orderErr); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assembling storefront snapshot")
	}

	if products == nil {
		products = []models.Product{}
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return &Snapshot{
		Products:        products,
		Orders:          orders,
		ShippingOptions: shipping.Options(),
	}, nil
}
