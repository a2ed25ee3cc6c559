package repository

import (
	"context"
	"time"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when no record matches the presented token.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenAlreadyRevoked is returned by RevokeRefreshToken when the
	// record was revoked between the read and the conditional update. This is
	// the losing side of a concurrent rotation race.
	ErrRefreshTokenAlreadyRevoked = errors.New("refresh token already revoked")
)

// RefreshTokenRepository defines the persistence contract for refresh token
// lifecycle records. Records are only ever mutated by setting the revocation
// timestamp; inactive records are pruned as housekeeping when a new token is
// issued, never updated in place.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByUserAndHash retrieves the token record owned by the
	// given user whose stored hash matches. The lookup is scoped to the user
	// so a stale cookie from one account can never validate against another.
	FindRefreshTokenByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) (*entity.RefreshToken, error)

	// RevokeRefreshToken sets the revocation timestamp on a record that has
	// not been revoked yet. The update is conditional on revoked_at being
	// null: of two concurrent rotations of the same token exactly one
	// succeeds and the other receives ErrRefreshTokenAlreadyRevoked.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID, revokedAt time.Time) error

	// FindActiveRefreshTokensByUserID retrieves all active (unrevoked,
	// unexpired) token records for a user.
	FindActiveRefreshTokensByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.RefreshToken, error)

	// DeleteInactiveRefreshTokens removes all revoked or expired records for
	// a user. Issued in the same transaction as the insert of a replacement
	// token so the working set stays bounded without a separate sweep.
	DeleteInactiveRefreshTokens(ctx context.Context, userID uuid.UUID, now time.Time) error

	// DeleteRefreshTokenByUserAndHash removes the matching record, ending the
	// session on logout.
	DeleteRefreshTokenByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) error
}
