package controllers

import (
	"context"
	"net/http"

	"github.com/aura-commerce/ministore-backend/api/responses"
	"github.com/aura-commerce/ministore-backend/pkg/config"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
)

// Pinger is the slice of a backing store the readiness probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Aura-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every backing store answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Aura-Env", cfg.App.Env)

		statuses := map[string]string{"status": "ready"}
		var failed *pkgerrors.Error
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				statuses[name] = "unavailable"
				statuses["status"] = "degraded"
				failed = pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable")
				continue
			}
			statuses[name] = "ok"
		}

		if failed != nil {
			responses.WriteError(r.Context(), logg, w, failed.WithDetails(statuses))
			return
		}
		responses.WriteSuccess(w, statuses)
	}
}
