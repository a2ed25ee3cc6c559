package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table.
type ActivityModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);not null"`
	City        string          `gorm:"type:varchar(100);not null"`
	Venue       string          `gorm:"type:varchar(200);not null"`
	IsCancelled bool            `gorm:"not null;default:false"`
	Attendees   []AttendeeModel `gorm:"foreignKey:ActivityID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// AttendeeModel mirrors the 'activity_attendees' table. The composite primary
// key (user_id, activity_id) makes double-joining impossible at the store
// level; is_host is the sole source of truth for the host capability.
type AttendeeModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	ActivityID uuid.UUID `gorm:"type:uuid;primary_key"`
	IsHost     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttendeeModel) TableName() string {
	return "activity_attendees"
}
