package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgAuth "github.com/aura-commerce/ministore-backend/pkg/auth"
	"github.com/aura-commerce/ministore-backend/pkg/config"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
)

type stubSessionVerifier struct {
	ok  bool
	err error
}

func (s stubSessionVerifier) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.ok, s.err
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, role enums.AccountRole) string {
	t.Helper()
	signed, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		Name:  "Test Shopper",
		Email: "shopper@example.com",
		Role:  role,
		JTI:   uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	return signed
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(testJWTConfig(), stubSessionVerifier{ok: true}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(testJWTConfig(), stubSessionVerifier{ok: true}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	cfg := testJWTConfig()
	handler := Auth(cfg, stubSessionVerifier{ok: false}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, enums.AccountRoleUser))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session got %d", resp.Code)
	}
}

func TestAuthSeedsContext(t *testing.T) {
	cfg := testJWTConfig()

	var captured struct {
		email    string
		role     string
		accessID string
	}
	handler := Auth(cfg, stubSessionVerifier{ok: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.email = UserEmailFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		captured.accessID = AccessIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, enums.AccountRoleAdmin))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.email != "shopper@example.com" {
		t.Fatalf("expected email in context got %q", captured.email)
	}
	if captured.role != string(enums.AccountRoleAdmin) {
		t.Fatalf("expected admin role got %q", captured.role)
	}
	if captured.accessID == "" {
		t.Fatal("expected access id in context")
	}
}

func TestOptionalAuthSkipsAnonymous(t *testing.T) {
	handler := OptionalAuth(testJWTConfig(), stubSessionVerifier{ok: true}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected anonymous pass-through got %d", resp.Code)
	}
}

func TestOptionalAuthStillRejectsBadToken(t *testing.T) {
	handler := OptionalAuth(testJWTConfig(), stubSessionVerifier{ok: true}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token got %d", resp.Code)
	}
}

func TestCartTokenMiddleware(t *testing.T) {
	var captured string
	handler := CartToken(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CartTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Cart-Token", "  tok-1  ")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if captured != "tok-1" {
		t.Fatalf("expected trimmed token got %q", captured)
	}
}
