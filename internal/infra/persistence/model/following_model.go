package model

import (
	"time"

	"github.com/google/uuid"
)

// FollowingModel mirrors the 'user_followings' table. The composite primary
// key (observer_id, target_id) makes duplicate follows impossible.
type FollowingModel struct {
	ObserverID uuid.UUID `gorm:"type:uuid;primary_key"`
	TargetID   uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowingModel) TableName() string {
	return "user_followings"
}
