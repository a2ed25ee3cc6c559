package impl

import (
	"context"
	"log/slog"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager:    params.TxManager,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateActivity persists a new activity and registers the creator as its
// host attendee in the same transaction, so an activity is never observable
// without a host.
func (srv *activityService) CreateActivity(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateActivityInput) (*entity.Activity, error) {
	activity := &entity.Activity{
		Title:       input.Title,
		Date:        input.Date,
		Description: input.Description,
		Category:    input.Category,
		City:        input.City,
		Venue:       input.Venue,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.ActivityRepo().Create(ctx, activity); createErr != nil {
			return errors.Wrap(createErr, "failed to create activity")
		}

		host := &entity.ActivityAttendee{
			UserID:     creatorID,
			ActivityID: activity.ID,
			IsHost:     true,
		}

		return errors.Wrap(repoFactory.AttendeeRepo().CreateAttendee(ctx, host), "failed to create host attendee")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute activity creation transaction")
	}

	srv.log(ctx).Info("Activity created",
		slog.Any("activityID", activity.ID), slog.Any("hostID", creatorID))

	return activity, nil
}

// GetActivity retrieves a single activity with its attendees.
func (srv *activityService) GetActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound.WrapMessage("activity lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	return activity, nil
}

// ListActivities retrieves all activities ordered by date.
func (srv *activityService) ListActivities(ctx context.Context) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// UpdateActivity modifies an existing activity.
func (srv *activityService) UpdateActivity(ctx context.Context, id uuid.UUID, input *usecase.UpdateActivityInput) (*entity.Activity, error) {
	var activity *entity.Activity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		var findErr error
		activity, findErr = activityRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrActivityNotFound) {
				return domainerrors.ErrActivityNotFound.WrapMessage("activity update failed")
			}

			return errors.Wrap(findErr, "failed to find activity for update")
		}

		activity.Title = input.Title
		activity.Date = input.Date
		activity.Description = input.Description
		activity.Category = input.Category
		activity.City = input.City
		activity.Venue = input.Venue

		return errors.Wrap(activityRepo.Update(ctx, activity), "failed to update activity")
	})
	if err != nil {
		return nil, err
	}

	return activity, nil
}

// DeleteActivity removes an activity and its membership rows.
func (srv *activityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if err := srv.activityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domainerrors.ErrActivityNotFound.WrapMessage("activity deletion failed")
		}

		return errors.Wrap(err, "failed to delete activity")
	}

	srv.log(ctx).Info("Activity deleted", slog.Any("activityID", id))

	return nil
}

// ToggleAttendance joins the caller to the activity or removes an existing
// non-host attendance. When the caller is the host, the toggle flips the
// cancellation flag instead: a host never leaves their own activity.
func (srv *activityService) ToggleAttendance(ctx context.Context, callerID, activityID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()
		attendeeRepo := repoFactory.AttendeeRepo()

		activity, err := activityRepo.FindByID(ctx, activityID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return domainerrors.ErrActivityNotFound.WrapMessage("attendance toggle failed")
			}

			return errors.Wrap(err, "failed to find activity for attendance toggle")
		}

		attendee, err := attendeeRepo.FindAttendee(ctx, callerID, activityID)
		if err != nil {
			if !errors.Is(err, repository.ErrAttendeeNotFound) {
				return errors.Wrap(err, "failed to find attendee for toggle")
			}

			joined := &entity.ActivityAttendee{
				UserID:     callerID,
				ActivityID: activityID,
			}
			srv.log(ctx).Debug("Attendee joined",
				slog.Any("userID", callerID), slog.Any("activityID", activityID))

			return errors.Wrap(attendeeRepo.CreateAttendee(ctx, joined), "failed to create attendee")
		}

		if attendee.IsHost {
			activity.IsCancelled = !activity.IsCancelled
			srv.log(ctx).Info("Activity cancellation toggled",
				slog.Any("activityID", activityID), slog.Bool("isCancelled", activity.IsCancelled))

			return errors.Wrap(activityRepo.Update(ctx, activity), "failed to toggle activity cancellation")
		}

		srv.log(ctx).Debug("Attendee left",
			slog.Any("userID", callerID), slog.Any("activityID", activityID))

		return errors.Wrap(attendeeRepo.DeleteAttendee(ctx, callerID, activityID), "failed to delete attendee")
	})
}
