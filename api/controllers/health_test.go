package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aura-commerce/ministore-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func healthConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func TestHealthLive(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	HealthLive(healthConfig()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Aura-Env") != "test" {
		t.Fatalf("expected env header, got %q", rec.Header().Get("X-Aura-Env"))
	}
}

func TestHealthReady(t *testing.T) {
	logg := testLogger()

	t.Run("all dependencies up", func(t *testing.T) {
		deps := map[string]Pinger{"postgres": stubPinger{}, "redis": stubPinger{}}
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		HealthReady(healthConfig(), logg, deps).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("dependency down", func(t *testing.T) {
		deps := map[string]Pinger{
			"postgres": stubPinger{},
			"redis":    stubPinger{err: errors.New("connection refused")},
		}
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		HealthReady(healthConfig(), logg, deps).ServeHTTP(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}
