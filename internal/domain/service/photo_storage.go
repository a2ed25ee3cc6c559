package service

import (
	"context"
	"io"
)

// PhotoUpload is the result of storing a photo in blob storage.
type PhotoUpload struct {
	Key string // Storage key, used later for deletion.
	URL string // Publicly reachable URL of the stored object.
}

// PhotoStorage abstracts the external blob store holding profile photos.
type PhotoStorage interface {
	// Upload stores the image content and returns its key and URL.
	Upload(ctx context.Context, content io.Reader, contentType string) (*PhotoUpload, error)

	// Delete removes a stored object by its key.
	Delete(ctx context.Context, key string) error
}
