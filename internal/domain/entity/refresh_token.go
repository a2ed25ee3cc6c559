package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session. Only the
// SHA-256 hash of the raw value is persisted; the raw value travels in an
// HTTP-only cookie and is never stored.
//
// Lifecycle: a token is created when a session is established or rotated, and
// leaves the active state exactly once, either by revocation (RevokedAt set)
// or by expiry. Neither state can be re-entered.
type RefreshToken struct {
	ID        uuid.UUID  // The unique ID for this specific refresh token record.
	UserID    uuid.UUID  // Links this session to the User it belongs to.
	TokenHash string     // SHA-256 hash of the raw refresh token value.
	ExpiresAt time.Time  // The time after which this token is no longer valid.
	RevokedAt *time.Time // Set once when the token is consumed by rotation or logout.
	CreatedAt time.Time  // Timestamp of when this session was created.
}

// IsExpired reports whether the token has passed its expiry at the given instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IsActive reports whether the token may still be exchanged for a new access
// token: it has not been revoked and has not expired.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && !t.IsExpired(now)
}
