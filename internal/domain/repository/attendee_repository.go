package repository

import (
	"context"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAttendeeNotFound is returned when no membership row exists for the
// composite key (user, activity).
var ErrAttendeeNotFound = errors.New("attendee not found")

// AttendeeRepository defines the operations on activity membership rows.
// The host capability check reads exactly one row by its composite key; the
// result is never cached across requests because host status can change at
// any time (ownership transfer) and a stale allow is a security defect.
type AttendeeRepository interface {
	// FindAttendee retrieves the membership row for the composite key.
	FindAttendee(ctx context.Context, userID, activityID uuid.UUID) (*entity.ActivityAttendee, error)

	// CreateAttendee inserts a membership row.
	CreateAttendee(ctx context.Context, attendee *entity.ActivityAttendee) error

	// DeleteAttendee removes a membership row.
	DeleteAttendee(ctx context.Context, userID, activityID uuid.UUID) error
}
