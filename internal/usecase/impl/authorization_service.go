package impl

import (
	"context"
	"log/slog"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/repository"
	"gather/internal/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authorizationService implements the AuthorizationUsecase interface. It
// answers the host capability question with a fresh read of the membership
// row on every call; nothing is cached between requests.
type authorizationService struct {
	attendeeRepo repository.AttendeeRepository
	logger       *slog.Logger
}

// AuthorizationServiceParams holds dependencies for authorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	AttendeeRepo repository.AttendeeRepository
	Logger       *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	return &authorizationService{
		attendeeRepo: params.AttendeeRepo,
		logger:       params.Logger,
	}
}

func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthorizeActivityHost reports whether the caller hosts the activity. A
// missing membership row and a non-host membership both produce (false, nil);
// a store fault produces an error that the caller must not collapse into a
// deny, because a 403 would mislead the client into thinking the credential
// is wrong rather than the backend unhealthy.
func (srv *authorizationService) AuthorizeActivityHost(ctx context.Context, callerID, activityID uuid.UUID) (bool, error) {
	attendee, err := srv.attendeeRepo.FindAttendee(ctx, callerID, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrAttendeeNotFound) {
			srv.log(ctx).Debug("Host check: caller not attending",
				slog.Any("userID", callerID), slog.Any("activityID", activityID))

			return false, nil
		}

		return false, errors.Wrap(err, "failed to read attendee for host check")
	}

	if !attendee.IsHost {
		srv.log(ctx).Debug("Host check: caller attends but does not host",
			slog.Any("userID", callerID), slog.Any("activityID", activityID))
	}

	return attendee.IsHost, nil
}
