package usecase

import (
	"context"
	"time"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateActivityInput defines the data required to create an activity.
type CreateActivityInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"`
	City        string    `json:"city" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
}

// UpdateActivityInput defines the data required to update an activity.
type UpdateActivityInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"`
	City        string    `json:"city" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
}

// ActivityUsecase defines the activity management operations. Mutations other
// than attendance toggling are gated by the host capability check at the
// delivery layer before these methods run.
type ActivityUsecase interface {
	// CreateActivity persists a new activity with the creator as its host attendee.
	CreateActivity(ctx context.Context, creatorID uuid.UUID, input *CreateActivityInput) (*entity.Activity, error)

	// GetActivity retrieves a single activity.
	GetActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// ListActivities retrieves all activities ordered by date.
	ListActivities(ctx context.Context) ([]*entity.Activity, error)

	// UpdateActivity modifies an existing activity. Host-only.
	UpdateActivity(ctx context.Context, id uuid.UUID, input *UpdateActivityInput) (*entity.Activity, error)

	// DeleteActivity removes an activity. Host-only.
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	// ToggleAttendance adds the caller as a plain attendee, or removes an
	// existing non-host attendance. The host cancels or reinstates the
	// activity instead of leaving it.
	ToggleAttendance(ctx context.Context, callerID, activityID uuid.UUID) error
}
