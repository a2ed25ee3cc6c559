// Package storage implements the photo blob store on top of gocloud.dev,
// so the same code runs against GCS in deployment and the local filesystem
// in development, selected purely by the bucket URL scheme.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"gather/config"
	"gather/internal/domain/lifecycle"
	"gather/internal/domain/service"
	"gather/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL scheme drivers.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobPhotoStorage implements the PhotoStorage interface over a blob bucket.
type blobPhotoStorage struct {
	bucket    *blob.Bucket
	publicURL string
	logger    *slog.Logger
}

// StorageParams defines the required parameters
type StorageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobPhotoStorage opens the configured bucket and returns the
// implementation as a service.PhotoStorage interface. A missing or
// unreachable bucket fails startup rather than the first upload.
func NewBlobPhotoStorage(params StorageParams) (service.PhotoStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is not configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobPhotoStorage{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(params.Config.Storage.PublicURL, "/"),
		logger:    params.Logger,
	}, nil
}

// Upload stores the image content under a fresh random key.
func (s *blobPhotoStorage) Upload(ctx context.Context, content io.Reader, contentType string) (*service.PhotoUpload, error) {
	key := uuid.New().String() + extensionFor(contentType)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Abort the write; Close after a cancelled context discards the object.
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write blob content")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize blob write")
	}

	return &service.PhotoUpload{
		Key: key,
		URL: s.publicURL + "/" + key,
	}, nil
}

// Delete removes a stored object by its key. Deleting a missing object is
// reported as an error by the driver; callers decide whether that matters.
func (s *blobPhotoStorage) Delete(ctx context.Context, key string) error {
	return errors.Wrap(s.bucket.Delete(ctx, key), "failed to delete blob")
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
