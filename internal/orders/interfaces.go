package orders

import (
	"context"

	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository defines persistence operations for orders and their line items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	FindByIDOrTrackingID(ctx context.Context, token string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) error
}
