package shipping

import (
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
)

// Option is a flat-rate delivery method offered at checkout.
type Option struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"price"`
	EstimatedDays string `json:"estimatedDays"`
}

// DefaultOptionID is preselected on the checkout form.
const DefaultOptionID = "standard"

var options = []Option{
	{ID: "standard", Name: "Standard Shipping", PriceCents: 0, EstimatedDays: "5-7 business days"},
	{ID: "express", Name: "Express Delivery", PriceCents: 1500, EstimatedDays: "2-3 business days"},
	{ID: "overnight", Name: "Next Day Air", PriceCents: 3000, EstimatedDays: "1 business day"},
}

// Options returns the full catalog of delivery methods, cheapest first.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Quote resolves an option by id. An unknown id is a validation error so
// checkout can surface it before any order is written.
func Quote(optionID string) (Option, error) {
	for _, opt := range options {
		if opt.ID == optionID {
			return opt, nil
		}
	}
	return Option{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping option").
		WithDetails(map[string]any{"shipping_option": optionID})
}
