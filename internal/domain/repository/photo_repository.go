package repository

import (
	"context"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPhotoNotFound is returned when a photo does not exist.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines the operations on photo records. The binary content
// lives in blob storage; these rows hold the key, URL and main flag.
type PhotoRepository interface {
	// FindByID retrieves a single photo by its storage key.
	FindByID(ctx context.Context, id string) (*entity.Photo, error)

	// FindByUserID retrieves all photos belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Photo, error)

	// Create persists a new photo record.
	Create(ctx context.Context, photo *entity.Photo) error

	// Update modifies an existing photo record.
	Update(ctx context.Context, photo *entity.Photo) error

	// Delete removes a photo record.
	Delete(ctx context.Context, id string) error
}
