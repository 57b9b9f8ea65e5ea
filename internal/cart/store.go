package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	redisclient "github.com/aura-commerce/ministore-backend/pkg/redis"
)

// Store persists one JSON blob per cart token.
type Store interface {
	Load(ctx context.Context, cartToken string) (*Cart, error)
	Save(ctx context.Context, cartToken string, cart *Cart) error
	Delete(ctx context.Context, cartToken string) error
}

type blobStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cartKeyer interface {
	CartKey(cartToken string) string
}

type redisStore struct {
	store blobStore
	keyer cartKeyer
	ttl   time.Duration
}

// NewStore builds the Redis-backed cart store. The TTL bounds how long an
// abandoned cart survives between visits.
func NewStore(client *redisclient.Client, ttl time.Duration) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &redisStore{store: client, keyer: client, ttl: ttl}, nil
}

// Load returns the stored cart, or an empty one when the key is missing. A
// corrupt blob is treated as a dependency failure, not an empty cart.
func (s *redisStore) Load(ctx context.Context, cartToken string) (*Cart, error) {
	raw, err := s.store.Get(ctx, s.keyer.CartKey(cartToken))
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return &Cart{Items: []Item{}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding cart blob")
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return &cart, nil
}

// Save overwrites the whole blob and refreshes the TTL.
func (s *redisStore) Save(ctx context.Context, cartToken string, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart blob")
	}
	if err := s.store.Set(ctx, s.keyer.CartKey(cartToken), string(raw), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return nil
}

// Delete drops the cart key entirely.
func (s *redisStore) Delete(ctx context.Context, cartToken string) error {
	if err := s.store.Del(ctx, s.keyer.CartKey(cartToken)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting cart")
	}
	return nil
}
