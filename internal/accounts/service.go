package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aura-commerce/ministore-backend/pkg/auth"
	"github.com/aura-commerce/ministore-backend/pkg/auth/session"
	"github.com/aura-commerce/ministore-backend/pkg/config"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	pkgerrors "github.com/aura-commerce/ministore-backend/pkg/errors"
	"github.com/aura-commerce/ministore-backend/pkg/security"
)

type sessionManager interface {
	Create(ctx context.Context, accessID, email string) error
	Revoke(ctx context.Context, accessID string) error
}

// RegisterInput is the signup form payload.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput is the login form payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile is the public slice of an account.
type UserProfile struct {
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Role  enums.AccountRole `json:"role"`
}

// Session is a minted login: the bearer token plus the profile it encodes.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Service handles signup, login, and logout.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, input LoginInput) (*Session, error)
	Logout(ctx context.Context, accessID string) error
	EnsureAdmin(ctx context.Context, cfg config.AdminConfig) (bool, error)
}

type service struct {
	store    Store
	sessions sessionManager
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	now      func() time.Time
}

// NewService builds the accounts service.
func NewService(store Store, sessions sessionManager, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("account store required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{
		store:    store,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Register creates the account and logs the shopper straight in.
func (s *service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}
	minLength := s.pwCfg.MinLength
	if minLength <= 0 {
		minLength = 6
	}
	if len(input.Password) < minLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password too short").
			WithDetails(map[string]any{"min_length": minLength})
	}

	hash, err := security.HashPassword(input.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	account := Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         enums.AccountRoleUser,
		CreatedAt:    s.now(),
	}

	created, err := s.store.Register(ctx, account)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}

	return s.mintSession(ctx, account)
}

// EnsureAdmin seeds the admin-console account from config. It reports whether
// a new account was created; an already-registered email is not an error, so
// restarts are idempotent. Signup only ever mints shopper accounts, making
// this the sole path to the admin role.
func (s *service) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) (bool, error) {
	email := normalizeEmail(cfg.Email)
	if email == "" {
		return false, nil
	}
	minLength := s.pwCfg.MinLength
	if minLength <= 0 {
		minLength = 6
	}
	if len(cfg.Password) < minLength {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "admin password too short").
			WithDetails(map[string]any{"min_length": minLength})
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "Store Admin"
	}

	hash, err := security.HashPassword(cfg.Password, s.pwCfg)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing admin password")
	}

	created, err := s.store.Register(ctx, Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         enums.AccountRoleAdmin,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// Login verifies credentials and mints a fresh session. Unknown emails and
// wrong passwords produce the same error.
func (s *service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	account, err := s.store.Find(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, err
	}

	ok, err := security.VerifyPassword(input.Password, account.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	return s.mintSession(ctx, *account)
}

// Logout revokes the server-side session. The cart mirror is keyed by cart
// token, not by session, so it survives.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

func (s *service) mintSession(ctx context.Context, account Account) (*Session, error) {
	accessID := session.NewAccessID()

	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
		JTI:   accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	if err := s.sessions.Create(ctx, accessID, account.Email); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating session")
	}

	return &Session{
		Token: token,
		User: UserProfile{
			Name:  account.Name,
			Email: account.Email,
			Role:  account.Role,
		},
	}, nil
}
