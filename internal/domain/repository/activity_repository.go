package repository

import (
	"context"
	"time"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrActivityNotFound is returned when an activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityFilter selects a slice of a user's activity history.
type ActivityFilter string

const (
	// ActivityFilterAll returns every activity the user attends.
	ActivityFilterAll ActivityFilter = ""
	// ActivityFilterPast returns activities dated before the reference time.
	ActivityFilterPast ActivityFilter = "past"
	// ActivityFilterFuture returns activities dated at or after the reference time.
	ActivityFilterFuture ActivityFilter = "future"
	// ActivityFilterHosting returns activities the user hosts.
	ActivityFilterHosting ActivityFilter = "hosting"
)

// ActivityRepository defines the standard operations for activity persistence.
type ActivityRepository interface {
	// FindByID retrieves a single activity with its attendees preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// List retrieves activities ordered by date.
	List(ctx context.Context) ([]*entity.Activity, error)

	// ListByAttendee retrieves the activities a user attends, narrowed by the
	// filter relative to the reference time.
	ListByAttendee(ctx context.Context, userID uuid.UUID, filter ActivityFilter, ref time.Time) ([]*entity.Activity, error)

	// Create persists a new activity.
	Create(ctx context.Context, activity *entity.Activity) error

	// Update modifies an existing activity.
	Update(ctx context.Context, activity *entity.Activity) error

	// Delete removes an activity and its membership rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
