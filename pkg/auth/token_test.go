package auth

import (
	"testing"
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/config"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "aura-test",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	signed, err := MintAccessToken(cfg, now, AccessTokenPayload{
		Name:  "Ali Ahmed",
		Email: "ali@example.com",
		Role:  enums.AccountRoleUser,
		JTI:   "session-1",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Email != "ali@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Role != enums.AccountRoleUser {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.ID != "session-1" {
		t.Fatalf("unexpected jti %q", claims.ID)
	}
}

func TestMintAccessTokenValidation(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	if _, err := MintAccessToken(config.JWTConfig{}, now, AccessTokenPayload{Email: "a@b.c", Role: enums.AccountRoleUser}); err == nil {
		t.Fatal("expected missing secret to fail")
	}
	if _, err := MintAccessToken(cfg, now, AccessTokenPayload{Role: enums.AccountRoleUser}); err == nil {
		t.Fatal("expected missing email to fail")
	}
	if _, err := MintAccessToken(cfg, now, AccessTokenPayload{Email: "a@b.c", Role: "root"}); err == nil {
		t.Fatal("expected invalid role to fail")
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now().UTC(), AccessTokenPayload{
		Email: "a@b.c",
		Role:  enums.AccountRoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, signed); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now().UTC().Add(-2*time.Hour), AccessTokenPayload{
		Email: "a@b.c",
		Role:  enums.AccountRoleUser,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected expired token to fail")
	}
}
