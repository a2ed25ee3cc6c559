// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/errors"

	"github.com/google/uuid"
)

// Internal refresh rejection reasons. They are distinguished for logging and
// metrics only; the delivery layer surfaces both as one uniform denial so a
// client cannot tell a guessed token from a replayed one.
var (
	// ErrRefreshUnrecognized means no record matches the presented value.
	ErrRefreshUnrecognized = errors.New("refresh token unrecognized")
	// ErrRefreshInactive means the matching record was already revoked or has
	// expired. A second presentation of a consumed token lands here: either a
	// benign race between two tabs or token theft. Policy is to reject and
	// force re-authentication, never to auto-extend.
	ErrRefreshInactive = errors.New("refresh token inactive")
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	UserName    string `json:"username" validate:"required,alphanum,min=3,max=30"`
	DisplayName string `json:"displayName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the identity resolved from the validated access token
// claims and the raw refresh token value presented in the cookie. Binding the
// lookup to the authenticated identity prevents a valid access token for one
// user being paired with a stale cookie for another.
type RefreshInput struct {
	UserID         uuid.UUID
	PresentedToken string
}

// LogoutInput identifies the session to terminate.
type LogoutInput struct {
	UserID         uuid.UUID
	PresentedToken string
}

// --- Output DTOs ---

// SessionOutput is the result of establishing or refreshing a session. The
// access token travels in the response body; the refresh token value is set
// as an HTTP-only cookie by the delivery layer and never appears in a body.
type SessionOutput struct {
	User             *entity.User
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AccountUsecase defines the session lifecycle operations: establishing a
// session, rotating the refresh token, and terminating the session.
type AccountUsecase interface {
	// Register creates a new account and establishes a session.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// Login verifies credentials and establishes a session. Failures are
	// undifferentiated: "no such account" and "wrong password" are identical.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Refresh validates and rotates a refresh token. Each successful call
	// consumes exactly one token and produces exactly one replacement; the
	// consumed token can never validate again.
	Refresh(ctx context.Context, input *RefreshInput) (*SessionOutput, error)

	// Logout terminates the session matching the presented token.
	Logout(ctx context.Context, input *LogoutInput) error

	// CurrentUser returns the authenticated user's account data.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
