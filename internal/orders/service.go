package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes order tracking and the admin order console.
type Service interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]models.Order, error)
	Track(ctx context.Context, token string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status string) (*models.Order, error)
}

type service struct {
	repo Repository
}

// NewService builds an orders service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return orders, nil
}

func (s *service) ListByCustomerEmail(ctx context.Context, email string) ([]models.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer email is required")
	}
	orders, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders by email")
	}
	return orders, nil
}

// Track resolves an order by order id or tracking id. Lookups are
// whitespace-trimmed but otherwise taken as typed.
func (s *service) Track(ctx context.Context, token string) (*models.Order, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tracking token is required")
	}

	order, err := s.repo.FindByIDOrTrackingID(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding order")
	}
	return order, nil
}

// UpdateStatus moves an order to any known status. The console allows
// rewinds, so no forward-only transition check is applied here.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status string) (*models.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").
			WithDetails(map[string]any{"status": status})
	}

	if err := s.repo.UpdateStatus(ctx, orderID, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating order status")
	}

	return s.Track(ctx, orderID)
}
