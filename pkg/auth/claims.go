package auth

import (
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Name  string
	Email string
	Role  enums.AccountRole
	JTI   string
}

// AccessTokenClaims represents the typed JWT issued to signed-in shoppers.
// Name and email mirror the session-user identity the storefront caches; the
// jti doubles as the Redis session key.
type AccessTokenClaims struct {
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Role  enums.AccountRole `json:"role"`
	jwt.RegisteredClaims
}
