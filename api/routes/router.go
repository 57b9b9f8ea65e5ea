package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aura-commerce/ministore-backend/api/controllers"
	"github.com/aura-commerce/ministore-backend/api/middleware"
	"github.com/aura-commerce/ministore-backend/internal/accounts"
	"github.com/aura-commerce/ministore-backend/internal/advisor"
	"github.com/aura-commerce/ministore-backend/internal/cart"
	"github.com/aura-commerce/ministore-backend/internal/catalog"
	checkoutsvc "github.com/aura-commerce/ministore-backend/internal/checkout"
	"github.com/aura-commerce/ministore-backend/internal/orders"
	"github.com/aura-commerce/ministore-backend/internal/storefront"
	"github.com/aura-commerce/ministore-backend/pkg/auth/session"
	"github.com/aura-commerce/ministore-backend/pkg/config"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
	"github.com/aura-commerce/ministore-backend/pkg/metrics"
)

// Deps carries everything the router wires together.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          controllers.Pinger
	SessionManager session.Checker
	HTTPMetrics    *metrics.HTTPMetrics

	Catalog    catalog.Service
	Cart       cart.Service
	Checkout   checkoutsvc.Service
	Orders     orders.Service
	Accounts   accounts.Service
	Advisor    advisor.Service
	Storefront storefront.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.CartToken(logg),
	)
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"postgres": deps.DB,
			"redis":    deps.Redis,
		}))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(deps.Accounts, logg))
			r.Post("/login", controllers.Login(deps.Accounts, logg))
			r.With(middleware.Auth(cfg.JWT, deps.SessionManager, logg)).
				Post("/logout", controllers.Logout(deps.Accounts, logg))
		})

		r.Get("/storefront", controllers.Storefront(deps.Storefront, logg))
		r.Get("/shipping-options", controllers.ListShippingOptions())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, logg))
			r.Get("/{productId}", controllers.GetProduct(deps.Catalog, logg))
		})

		// Cart endpoints are keyed by X-Cart-Token, not by the auth
		// session. Guests and signed-in shoppers share the same flow.
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Cart, logg))
			r.Delete("/", controllers.ClearCart(deps.Cart, logg))
			r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
			r.Patch("/items", controllers.UpdateCartQuantity(deps.Cart, logg))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(deps.Cart, logg))
		})

		r.With(middleware.OptionalAuth(cfg.JWT, deps.SessionManager, logg)).
			Post("/checkout", controllers.Checkout(deps.Checkout, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/track/{token}", controllers.TrackOrder(deps.Orders, logg))
			r.With(middleware.Auth(cfg.JWT, deps.SessionManager, logg)).
				Get("/mine", controllers.MyOrders(deps.Orders, logg))
		})

		r.Post("/advisor", controllers.Advise(deps.Advisor, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRole("admin", logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.CreateProduct(deps.Catalog, logg))
			r.Patch("/{productId}", controllers.UpdateProduct(deps.Catalog, logg))
			r.Delete("/{productId}", controllers.DeleteProduct(deps.Catalog, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.Orders, logg))
			r.Patch("/{orderId}/status", controllers.UpdateOrderStatus(deps.Orders, logg))
		})
	})

	return r
}
