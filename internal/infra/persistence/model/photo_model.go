package model

import (
	"time"

	"github.com/google/uuid"
)

// PhotoModel mirrors the 'photos' table. The primary key is the blob storage
// key so the record and the stored object can never drift apart.
type PhotoModel struct {
	ID        string    `gorm:"type:varchar(255);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	IsMain    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "photos"
}
