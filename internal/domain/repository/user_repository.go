// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with photos preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUserName retrieves a single user by their login name.
	FindByUserName(ctx context.Context, userName string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

// CredentialRepository persists the password hash for a user separately from
// the profile data, so that ordinary reads never load credential material.
type CredentialRepository interface {
	// FindPasswordHash returns the stored password hash for a user.
	FindPasswordHash(ctx context.Context, userID uuid.UUID) (string, error)

	// SetPasswordHash stores the password hash for a user.
	SetPasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
}
