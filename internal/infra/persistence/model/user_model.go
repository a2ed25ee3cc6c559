// Package model contains the GORM data models mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserName    string    `gorm:"type:varchar(30);unique;not null"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Bio         string    `gorm:"type:text"`
	Photos      []PhotoModel `gorm:"foreignKey:UserID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CredentialModel mirrors the 'user_credentials' table. Password material is
// kept out of the users table so profile reads never touch it.
type CredentialModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primary_key"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "user_credentials"
}
