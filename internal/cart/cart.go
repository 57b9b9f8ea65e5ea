package cart

import (
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/enums"
	"github.com/google/uuid"
)

// Item is a product snapshot plus quantity. Snapshotting keeps a shopper's
// cart stable while admins edit the catalog underneath it.
type Item struct {
	ProductID  uuid.UUID             `json:"id"`
	Name       string                `json:"name"`
	PriceCents int                   `json:"price"`
	Category   enums.ProductCategory `json:"category"`
	ImageURL   string                `json:"image"`
	Rating     float64               `json:"rating"`
	Stock      int                   `json:"stock"`
	Quantity   int                   `json:"quantity"`
}

// Cart is the full mirror stored per cart token. Writes replace the whole
// blob, so the last writer wins across tabs.
type Cart struct {
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubtotalCents sums price times quantity across all lines.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += int64(item.PriceCents) * int64(item.Quantity)
	}
	return total
}

// TotalQuantity counts the units in the cart, for the badge on the cart icon.
func (c *Cart) TotalQuantity() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
