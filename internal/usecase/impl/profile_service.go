package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	followingRepo repository.FollowingRepository
	activityRepo  repository.ActivityRepository
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	FollowingRepo repository.FollowingRepository
	ActivityRepo  repository.ActivityRepository
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		followingRepo: params.FollowingRepo,
		activityRepo:  params.ActivityRepo,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFollow follows the target when no relation exists and unfollows
// otherwise. Following oneself is rejected.
func (srv *profileService) ToggleFollow(ctx context.Context, observerID uuid.UUID, targetUserName string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		target, err := repoFactory.UserRepo().FindByUserName(ctx, targetUserName)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("follow toggle failed")
			}

			return errors.Wrap(err, "failed to find follow target")
		}

		if target.ID == observerID {
			return domainerrors.ErrValidationFailed.WithDetails("cannot follow yourself").
				WrapMessage("follow toggle rejected")
		}

		followingRepo := repoFactory.FollowingRepo()

		_, err = followingRepo.FindFollowing(ctx, observerID, target.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrFollowingNotFound) {
				return errors.Wrap(err, "failed to find following relation")
			}

			relation := &entity.UserFollowing{
				ObserverID: observerID,
				TargetID:   target.ID,
			}
			srv.log(ctx).Debug("Following created",
				slog.Any("observerID", observerID), slog.Any("targetID", target.ID))

			return errors.Wrap(followingRepo.CreateFollowing(ctx, relation), "failed to create following relation")
		}

		srv.log(ctx).Debug("Following removed",
			slog.Any("observerID", observerID), slog.Any("targetID", target.ID))

		return errors.Wrap(followingRepo.DeleteFollowing(ctx, observerID, target.ID), "failed to delete following relation")
	})
}

// ListFollowers retrieves the users following the named user.
func (srv *profileService) ListFollowers(ctx context.Context, userName string) ([]*entity.User, error) {
	user, err := srv.findByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	followers, err := srv.followingRepo.ListFollowers(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return followers, nil
}

// ListFollowing retrieves the users the named user follows.
func (srv *profileService) ListFollowing(ctx context.Context, userName string) ([]*entity.User, error) {
	user, err := srv.findByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	following, err := srv.followingRepo.ListFollowing(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return following, nil
}

// ListActivities retrieves the named user's activities narrowed by the filter.
func (srv *profileService) ListActivities(ctx context.Context, userName string, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	user, err := srv.findByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	activities, err := srv.activityRepo.ListByAttendee(ctx, user.ID, filter, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities by attendee")
	}

	return activities, nil
}

func (srv *profileService) findByUserName(ctx context.Context, userName string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	return user, nil
}
