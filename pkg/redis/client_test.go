package redis

import (
	"testing"
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/config"
)

func TestOptionsFromConfigURL(t *testing.T) {
	cfg := config.RedisConfig{
		URL:          "redis://:secret@localhost:6380/2",
		PoolSize:     15,
		MinIdleConns: 3,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("options from config: %v", err)
	}
	if opts.Addr != "localhost:6380" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2 from url, got %d", opts.DB)
	}
	if opts.PoolSize != 15 {
		t.Fatalf("expected pool size fallback, got %d", opts.PoolSize)
	}
}

func TestOptionsFromConfigAddress(t *testing.T) {
	cfg := config.RedisConfig{Address: "127.0.0.1:6379", Password: "pw", DB: 1}
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("options from config: %v", err)
	}
	if opts.Addr != "127.0.0.1:6379" || opts.Password != "pw" || opts.DB != 1 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestOptionsFromConfigRequiresEndpoint(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected missing endpoint to fail")
	}
}

func TestKeyNamespacing(t *testing.T) {
	c := &Client{}
	if got := c.CartKey("tok-1"); got != "aura:cart:tok-1" {
		t.Fatalf("unexpected cart key %q", got)
	}
	if got := c.AccountsKey(); got != "aura:accounts:registered" {
		t.Fatalf("unexpected accounts key %q", got)
	}
	if got := c.SessionKey("abc"); got != "aura:session:abc" {
		t.Fatalf("unexpected session key %q", got)
	}
}
