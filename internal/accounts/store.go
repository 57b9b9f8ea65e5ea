package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/enums"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	redisclient "github.com/aura-commerce/ministore-backend/pkg/redis"
)

// ErrAccountNotFound signals an email with no registered account.
var ErrAccountNotFound = errors.New("account not found")

// Account is a self-registered shopper, stored as one hash field per email.
type Account struct {
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"password_hash"`
	Role         enums.AccountRole `json:"role"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Store persists the registered-accounts hash.
type Store interface {
	Register(ctx context.Context, account Account) (bool, error)
	Find(ctx context.Context, email string) (*Account, error)
}

type hashStore interface {
	HSetNX(ctx context.Context, key, field string, value any) (bool, error)
	HGet(ctx context.Context, key, field string) (string, error)
}

type accountsKeyer interface {
	AccountsKey() string
}

type redisStore struct {
	store hashStore
	keyer accountsKeyer
}

// NewStore builds the Redis-backed account store.
func NewStore(client *redisclient.Client) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &redisStore{store: client, keyer: client}, nil
}

// Register writes the account only when the email is unclaimed. The bool
// reports whether the write happened.
func (s *redisStore) Register(ctx context.Context, account Account) (bool, error) {
	raw, err := json.Marshal(account)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding account")
	}
	created, err := s.store.HSetNX(ctx, s.keyer.AccountsKey(), normalizeEmail(account.Email), string(raw))
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registering account")
	}
	return created, nil
}

func (s *redisStore) Find(ctx context.Context, email string) (*Account, error) {
	raw, err := s.store.HGet(ctx, s.keyer.AccountsKey(), normalizeEmail(email))
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, ErrAccountNotFound
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading account")
	}

	var account Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding account")
	}
	return &account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
