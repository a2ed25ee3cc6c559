package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserFollowing records that one user (the observer) follows another (the
// target). The composite key is (ObserverID, TargetID).
type UserFollowing struct {
	ObserverID uuid.UUID
	TargetID   uuid.UUID
	CreatedAt  time.Time
}
