package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an event that users can host and attend.
type Activity struct {
	ID          uuid.UUID
	Title       string
	Date        time.Time
	Description string
	Category    string
	City        string
	Venue       string
	IsCancelled bool
	Attendees   []ActivityAttendee
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityAttendee is the membership record linking a user to an activity.
// The composite key is (UserID, ActivityID). Membership is independent of host
// status: a user can be a plain attendee, the host, or absent entirely. The
// host flag is the sole source of truth for the host capability check.
type ActivityAttendee struct {
	UserID     uuid.UUID
	ActivityID uuid.UUID
	IsHost     bool
	CreatedAt  time.Time
}
