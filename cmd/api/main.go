package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aura-commerce/ministore-backend/api/routes"
	"github.com/aura-commerce/ministore-backend/internal/accounts"
	"github.com/aura-commerce/ministore-backend/internal/advisor"
	"github.com/aura-commerce/ministore-backend/internal/cart"
	"github.com/aura-commerce/ministore-backend/internal/catalog"
	checkoutsvc "github.com/aura-commerce/ministore-backend/internal/checkout"
	"github.com/aura-commerce/ministore-backend/internal/orders"
	"github.com/aura-commerce/ministore-backend/internal/storefront"
	"github.com/aura-commerce/ministore-backend/pkg/auth/session"
	"github.com/aura-commerce/ministore-backend/pkg/config"
	"github.com/aura-commerce/ministore-backend/pkg/db"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
	"github.com/aura-commerce/ministore-backend/pkg/metrics"
	"github.com/aura-commerce/ministore-backend/pkg/migrate"
	"github.com/aura-commerce/ministore-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(redisClient, cfg.Checkout.CartTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(cartStore, catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(dbClient.DB())
	ordersService, err := orders.NewService(ordersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(cartService, ordersRepo, dbClient, catalogRepo, cfg.Checkout, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	accountsStore, err := accounts.NewStore(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create accounts store", err)
		os.Exit(1)
	}
	accountsService, err := accounts.NewService(accountsStore, sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create accounts service", err)
		os.Exit(1)
	}

	seeded, err := accountsService.EnsureAdmin(context.Background(), cfg.Admin)
	if err != nil {
		logg.Error(context.Background(), "failed to seed admin account", err)
		os.Exit(1)
	}
	if seeded {
		logg.Info(logg.WithUserEmail(context.Background(), cfg.Admin.Email), "admin account seeded")
	}

	advisorClient, err := advisor.NewClient(cfg.Advisor)
	if err != nil {
		logg.Error(context.Background(), "failed to create advisor client", err)
		os.Exit(1)
	}
	advisorService, err := advisor.NewService(advisorClient, catalogService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create advisor service", err)
		os.Exit(1)
	}

	storefrontService, err := storefront.NewService(catalogService, ordersService)
	if err != nil {
		logg.Error(context.Background(), "failed to create storefront service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			SessionManager: sessionManager,
			HTTPMetrics:    metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),
			Catalog:        catalogService,
			Cart:           cartService,
			Checkout:       checkoutService,
			Orders:         ordersService,
			Accounts:       accountsService,
			Advisor:        advisorService,
			Storefront:     storefrontService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
