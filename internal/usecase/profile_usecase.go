package usecase

import (
	"context"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"

	"github.com/google/uuid"
)

// ProfileUsecase defines the social-graph and profile listing operations.
type ProfileUsecase interface {
	// ToggleFollow follows the target when no relation exists, and unfollows
	// otherwise.
	ToggleFollow(ctx context.Context, observerID uuid.UUID, targetUserName string) error

	// ListFollowers retrieves the users following the named user.
	ListFollowers(ctx context.Context, userName string) ([]*entity.User, error)

	// ListFollowing retrieves the users the named user follows.
	ListFollowing(ctx context.Context, userName string) ([]*entity.User, error)

	// ListActivities retrieves the named user's activities narrowed by the
	// filter (past, future, hosting).
	ListActivities(ctx context.Context, userName string, filter repository.ActivityFilter) ([]*entity.Activity, error)
}
