package controllers

import (
	"net/http"

	"github.com/aura-commerce/ministore-backend/api/middleware"
	"github.com/aura-commerce/ministore-backend/api/responses"
	"github.com/aura-commerce/ministore-backend/api/validators"
	"github.com/aura-commerce/ministore-backend/internal/checkout"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email" validate:"omitempty,email"`
	ShippingOptionID string `json:"shipping_option_id"`
}

// Checkout places a cash-on-delivery order from the shopper's cart. Guests
// supply their name and email in the body; signed-in shoppers inherit them
// from the session when the body leaves them blank.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := checkout.Input{
			CartToken:        middleware.CartTokenFromContext(r.Context()),
			CustomerName:     payload.CustomerName,
			CustomerEmail:    payload.CustomerEmail,
			ShippingOptionID: payload.ShippingOptionID,
		}
		if input.CustomerName == "" {
			input.CustomerName = middleware.UserNameFromContext(r.Context())
		}
		if input.CustomerEmail == "" {
			input.CustomerEmail = middleware.UserEmailFromContext(r.Context())
		}

		order, err := svc.PlaceOrder(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithOrderID(r.Context(), order.ID), "checkout.placed")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
