package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/domain/service"
	"gather/internal/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// photoService implements the PhotoUsecase interface. Blob content lives in
// external storage; the database rows only carry the key, URL and main flag.
type photoService struct {
	txManager repository.TransactionManager
	photoRepo repository.PhotoRepository
	storage   service.PhotoStorage
	logger    *slog.Logger
}

// PhotoServiceParams holds dependencies for photoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PhotoRepo repository.PhotoRepository
	Storage   service.PhotoStorage
	Logger    *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		txManager: params.TxManager,
		photoRepo: params.PhotoRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPhoto uploads the image to blob storage, then records it. The first photo
// a user uploads becomes the main photo. If the record insert fails the
// uploaded blob is deleted on a best-effort basis.
func (srv *photoService) AddPhoto(ctx context.Context, userID uuid.UUID, content io.Reader, contentType string) (*entity.Photo, error) {
	upload, err := srv.storage.Upload(ctx, content, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload photo to blob storage")
	}

	photo := &entity.Photo{
		ID:     upload.Key,
		UserID: userID,
		URL:    upload.URL,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.PhotoRepo()

		existing, findErr := photoRepo.FindByUserID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to list existing photos")
		}
		photo.IsMain = len(existing) == 0

		return errors.Wrap(photoRepo.Create(ctx, photo), "failed to create photo record")
	})
	if err != nil {
		if deleteErr := srv.storage.Delete(ctx, upload.Key); deleteErr != nil {
			srv.log(ctx).Warn("Orphaned blob left after failed photo record insert",
				slog.String("key", upload.Key), slog.Any("error", deleteErr))
		}

		return nil, err
	}

	srv.log(ctx).Info("Photo added",
		slog.Any("userID", userID), slog.String("photoID", photo.ID), slog.Bool("isMain", photo.IsMain))

	return photo, nil
}

// SetMainPhoto marks the given photo as main and unmarks the previous one in
// the same transaction, preserving the single-main invariant.
func (srv *photoService) SetMainPhoto(ctx context.Context, userID uuid.UUID, photoID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.PhotoRepo()

		photos, err := photoRepo.FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list photos")
		}

		var target *entity.Photo
		for _, photo := range photos {
			if photo.ID == photoID {
				target = photo

				break
			}
		}
		if target == nil {
			return domainerrors.ErrPhotoNotFound.WrapMessage("set main photo failed")
		}
		if target.IsMain {
			return nil
		}

		for _, photo := range photos {
			if photo.IsMain {
				photo.IsMain = false
				if err := photoRepo.Update(ctx, photo); err != nil {
					return errors.Wrap(err, "failed to unmark previous main photo")
				}
			}
		}

		target.IsMain = true

		return errors.Wrap(photoRepo.Update(ctx, target), "failed to mark main photo")
	})
}

// DeletePhoto removes a non-main photo. The record is deleted first; the blob
// is removed after the transaction commits so a storage fault cannot leave a
// record pointing at a missing object.
func (srv *photoService) DeletePhoto(ctx context.Context, userID uuid.UUID, photoID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.PhotoRepo()

		photo, findErr := photoRepo.FindByID(ctx, photoID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrPhotoNotFound) {
				return domainerrors.ErrPhotoNotFound.WrapMessage("photo deletion failed")
			}

			return errors.Wrap(findErr, "failed to find photo for deletion")
		}

		if photo.UserID != userID {
			return domainerrors.ErrForbidden.WrapMessage("photo deletion rejected")
		}
		if photo.IsMain {
			return domainerrors.ErrMainPhotoDelete.WrapMessage("photo deletion rejected")
		}

		return errors.Wrap(photoRepo.Delete(ctx, photoID), "failed to delete photo record")
	})
	if err != nil {
		return err
	}

	if deleteErr := srv.storage.Delete(ctx, photoID); deleteErr != nil {
		srv.log(ctx).Warn("Orphaned blob left after photo record deletion",
			slog.String("key", photoID), slog.Any("error", deleteErr))
	}

	return nil
}
