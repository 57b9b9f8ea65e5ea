package catalog

// CreateProductInput carries the admin console fields for a new catalog row.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	PriceCents  int     `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	PriceCents  *int     `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}
