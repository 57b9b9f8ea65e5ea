package models

import (
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/enums"
)

// Order is a checkout result. The primary key and tracking token are
// client-generated; items are a point-in-time snapshot of the cart, so later
// catalog edits never affect historical orders.
type Order struct {
	ID            string            `gorm:"column:id;primaryKey" json:"id"`
	Customer      string            `gorm:"column:customer;not null" json:"customer"`
	CustomerEmail *string           `gorm:"column:customer_email" json:"customer_email,omitempty"`
	TotalCents    int               `gorm:"column:total_cents;not null" json:"total"`
	Status        enums.OrderStatus `gorm:"column:status;not null;default:'Processing'" json:"status"`
	// PlacedOn is the en-GB display date the storefront shows; created_at is
	// the sortable source of truth.
	PlacedOn   string      `gorm:"column:placed_on;not null" json:"date"`
	TrackingID string      `gorm:"column:tracking_id;uniqueIndex;not null" json:"tracking_id"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// PlacedOnFormat renders dates the way the storefront always has (en-GB).
const PlacedOnFormat = "02/01/2006"
