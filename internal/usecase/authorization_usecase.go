package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthorizationUsecase decides whether a caller holds the host capability for
// a specific activity. The check is a point-in-time read of the membership
// row; results are never cached across requests.
type AuthorizationUsecase interface {
	// AuthorizeActivityHost reports whether the caller is the host of the
	// activity. A missing membership row or a non-host membership both deny.
	// Store faults are returned as errors and must not be read as a decision.
	AuthorizeActivityHost(ctx context.Context, callerID, activityID uuid.UUID) (bool, error)
}
