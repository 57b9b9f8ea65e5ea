package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aura-commerce/ministore-backend/internal/cart"
	"github.com/aura-commerce/ministore-backend/internal/catalog"
	"github.com/aura-commerce/ministore-backend/internal/orders"
	"github.com/aura-commerce/ministore-backend/internal/shipping"
	"github.com/aura-commerce/ministore-backend/pkg/config"
	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
	"github.com/aura-commerce/ministore-backend/pkg/token"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartAccess interface {
	Get(ctx context.Context, cartToken string) (*cart.Cart, error)
	Clear(ctx context.Context, cartToken string) error
}

// Input is the payment-on-delivery checkout form payload.
type Input struct {
	CartToken        string
	CustomerName     string
	CustomerEmail    string
	ShippingOptionID string
}

// Service places orders from cart snapshots.
type Service interface {
	PlaceOrder(ctx context.Context, input Input) (*models.Order, error)
}

type service struct {
	carts     cartAccess
	ordersRep orders.Repository
	tx        txRunner
	inventory catalog.Repository
	cfg       config.CheckoutConfig
	logg      *logger.Logger
	now       func() time.Time
}

// NewService builds the checkout orchestrator.
func NewService(carts cartAccess, ordersRepo orders.Repository, tx txRunner, inventory catalog.Repository, cfg config.CheckoutConfig, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart access required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if cfg.DecrementStock && inventory == nil {
		return nil, fmt.Errorf("catalog repository required when stock decrement is enabled")
	}
	return &service{
		carts:     carts,
		ordersRep: ordersRepo,
		tx:        tx,
		inventory: inventory,
		cfg:       cfg,
		logg:      logg,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

// PlaceOrder turns the cart into a persisted order in one transaction. The
// cart mirror is only cleared after the commit, so a failed checkout leaves
// the shopper's cart intact.
func (s *service) PlaceOrder(ctx context.Context, input Input) (*models.Order, error) {
	if strings.TrimSpace(input.CartToken) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	customer := strings.TrimSpace(input.CustomerName)
	if customer == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	option, err := shipping.Quote(input.ShippingOptionID)
	if err != nil {
		return nil, err
	}

	current, err := s.carts.Get(ctx, input.CartToken)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	orderID, err := token.NewOrderID()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating order id")
	}
	trackingID, err := token.NewTrackingID()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating tracking id")
	}

	placedAt := s.now()
	order := &models.Order{
		ID:         orderID,
		Customer:   customer,
		TotalCents: int(current.SubtotalCents() + option.PriceCents),
		Status:     enums.OrderStatusProcessing,
		PlacedOn:   placedAt.Format(models.PlacedOnFormat),
		TrackingID: trackingID,
		CreatedAt:  placedAt,
	}
	if email := strings.TrimSpace(input.CustomerEmail); email != "" {
		order.CustomerEmail = &email
	}

	order.Items = make([]models.OrderItem, 0, len(current.Items))
	for _, line := range current.Items {
		productID := line.ProductID
		order.Items = append(order.Items, models.OrderItem{
			OrderID:        order.ID,
			ProductID:      &productID,
			Name:           line.Name,
			PriceCents:     line.PriceCents,
			Category:       string(line.Category),
			ImageURL:       line.ImageURL,
			Quantity:       line.Quantity,
			LineTotalCents: line.PriceCents * line.Quantity,
		})
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.ordersRep.WithTx(tx)
		if _, err := repo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
		}
		if s.cfg.DecrementStock {
			inventory := s.inventory.WithTx(tx)
			for _, line := range current.Items {
				ok, err := inventory.DecrementStock(ctx, line.ProductID, line.Quantity)
				if err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decrementing stock")
				}
				if !ok {
					return pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock").
						WithDetails(map[string]any{"product_id": line.ProductID, "requested": line.Quantity})
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// best effort: the order exists either way
	if err := s.carts.Clear(ctx, input.CartToken); err != nil && s.logg != nil {
		cctx := s.logg.WithOrderID(ctx, order.ID)
		s.logg.Warn(s.logg.WithCartToken(cctx, input.CartToken), "checkout.cart_clear_failed")
	}
	return order, nil
}
