package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem captures the snapshot of one cart line at checkout. ProductID is a
// soft reference only; the snapshot fields are authoritative.
type OrderItem struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	OrderID        string     `gorm:"column:order_id;not null;index" json:"-"`
	ProductID      *uuid.UUID `gorm:"column:product_id;type:uuid" json:"product_id,omitempty"`
	Name           string     `gorm:"column:name;not null" json:"name"`
	PriceCents     int        `gorm:"column:price_cents;not null" json:"price"`
	Category       string     `gorm:"column:category;not null" json:"category"`
	ImageURL       string     `gorm:"column:image_url" json:"image"`
	Quantity       int        `gorm:"column:quantity;not null" json:"quantity"`
	LineTotalCents int        `gorm:"column:line_total_cents;not null" json:"line_total"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"-"`
}
