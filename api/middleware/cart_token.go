package middleware

import (
	"net/http"
	"strings"

	"github.com/aura-commerce/ministore-backend/pkg/logger"
)

const cartTokenHeader = "X-Cart-Token"

// CartToken lifts the shopper's cart token off the request. The token is
// deliberately separate from the auth session: logging out must not empty
// the cart.
func CartToken(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(cartTokenHeader))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithCartToken(r.Context(), token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
