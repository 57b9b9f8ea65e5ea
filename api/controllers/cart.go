package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aura-commerce/ministore-backend/api/middleware"
	"github.com/aura-commerce/ministore-backend/api/responses"
	"github.com/aura-commerce/ministore-backend/api/validators"
	"github.com/aura-commerce/ministore-backend/internal/cart"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
)

// GetCart returns the cart for the X-Cart-Token on the request. A request
// without a token gets a validation error from the service.
func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), middleware.CartTokenFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// AddCartItem adds one unit of a product, or bumps the quantity when the
// product is already in the cart.
func AddCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.Add(r.Context(), middleware.CartTokenFromContext(r.Context()), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

type updateCartQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Delta     int       `json:"delta" validate:"required"`
}

// UpdateCartQuantity nudges a line's quantity by delta. Quantity never
// drops below one; removal is its own endpoint.
func UpdateCartQuantity(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.UpdateQuantity(r.Context(), middleware.CartTokenFromContext(r.Context()), payload.ProductID, payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.Remove(r.Context(), middleware.CartTokenFromContext(r.Context()), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

func ClearCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context(), middleware.CartTokenFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
