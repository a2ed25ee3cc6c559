package usecase

import (
	"context"
	"io"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// PhotoUsecase defines profile photo management. It maintains the invariant
// that at most one photo per user is marked as main whenever any photos exist.
type PhotoUsecase interface {
	// AddPhoto uploads the image to blob storage and records it. The first
	// photo a user uploads becomes the main photo.
	AddPhoto(ctx context.Context, userID uuid.UUID, content io.Reader, contentType string) (*entity.Photo, error)

	// SetMainPhoto marks the given photo as main and unmarks the previous one.
	SetMainPhoto(ctx context.Context, userID uuid.UUID, photoID string) error

	// DeletePhoto removes a non-main photo from storage and from the record set.
	DeletePhoto(ctx context.Context, userID uuid.UUID, photoID string) error
}
