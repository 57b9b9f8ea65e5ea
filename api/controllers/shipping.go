package controllers

import (
	"net/http"

	"github.com/aura-commerce/ministore-backend/api/responses"
	"github.com/aura-commerce/ministore-backend/internal/shipping"
)

// ListShippingOptions returns the fixed delivery methods and their prices.
func ListShippingOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, shipping.Options())
	}
}
