// Package service declares the domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims carried by an access token. They are sufficient
// for request identification and the host capability check without a database
// round-trip.
type AccessClaims struct {
	UserID   uuid.UUID `json:"-"`
	UserName string    `json:"username"`
	Email    string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService mints and validates short-lived access tokens and generates the
// opaque values used as refresh tokens. It is stateless: given the signing key,
// the claims and the clock, its output is deterministic, and it performs no I/O.
type TokenService interface {
	// CreateAccessToken mints a signed access token for the given identity.
	// The identity must already be authenticated by the caller.
	CreateAccessToken(userID uuid.UUID, userName, email string) (string, error)

	// ValidateAccessToken parses and verifies an access token string.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// GenerateRefreshTokenValue produces a new opaque refresh token value from
	// a cryptographic random source. The value is an unguessable bearer
	// secret of at least 256 bits of entropy.
	GenerateRefreshTokenValue() (string, error)

	// HashToken returns the hash under which a refresh token value is stored.
	// Raw values are never persisted.
	HashToken(value string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
