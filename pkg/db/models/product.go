package models

import (
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/enums"
	"github.com/google/uuid"
)

// Product is a catalog entry. The data store assigns the identifier; rows are
// created and mutated only through the admin console.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string                `gorm:"column:name;not null" json:"name"`
	PriceCents  int                   `gorm:"column:price_cents;not null" json:"price"`
	Category    enums.ProductCategory `gorm:"column:category;not null" json:"category"`
	Description string                `gorm:"column:description;not null" json:"description"`
	ImageURL    string                `gorm:"column:image_url;not null" json:"image"`
	Rating      float64               `gorm:"column:rating;not null;default:4.5" json:"rating"`
	Stock       int                   `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// InStock reports whether the product can be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}
