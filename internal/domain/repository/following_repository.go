package repository

import (
	"context"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFollowingNotFound is returned when no following relation exists for the
// composite key (observer, target).
var ErrFollowingNotFound = errors.New("following not found")

// FollowingRepository defines the operations on the social graph edges.
type FollowingRepository interface {
	// FindFollowing retrieves the relation for the composite key.
	FindFollowing(ctx context.Context, observerID, targetID uuid.UUID) (*entity.UserFollowing, error)

	// CreateFollowing inserts a relation.
	CreateFollowing(ctx context.Context, following *entity.UserFollowing) error

	// DeleteFollowing removes a relation.
	DeleteFollowing(ctx context.Context, observerID, targetID uuid.UUID) error

	// ListFollowers retrieves the users following the given user.
	ListFollowers(ctx context.Context, targetID uuid.UUID) ([]*entity.User, error)

	// ListFollowing retrieves the users the given user follows.
	ListFollowing(ctx context.Context, observerID uuid.UUID) ([]*entity.User, error)
}
