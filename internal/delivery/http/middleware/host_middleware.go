package middleware

import (
	"log/slog"

	deliverycontext "gather/internal/delivery/context"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HostMiddleware gates activity mutations behind the host capability. It must
// run after AuthMiddleware.Authenticate.
type HostMiddleware struct {
	authorizationUC usecase.AuthorizationUsecase
	logger          *slog.Logger
}

// NewHostMiddleware is the constructor for HostMiddleware.
func NewHostMiddleware(authorizationUC usecase.AuthorizationUsecase, logger *slog.Logger) *HostMiddleware {
	return &HostMiddleware{
		authorizationUC: authorizationUC,
		logger:          logger,
	}
}

// RequireActivityHost denies the request unless the authenticated caller hosts
// the activity named by the :id route parameter. Every failure shape is
// fail-closed: missing identity, unparseable ID and non-host membership all
// deny. A store fault propagates as a 5xx instead, because answering 403
// would tell the client its credential is wrong when the backend is merely
// unhealthy.
func (m *HostMiddleware) RequireActivityHost(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("host check without authenticated identity")
		}

		activityID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return domainerrors.ErrForbidden.WrapMessage("host check on unparseable activity ID")
		}

		isHost, err := m.authorizationUC.AuthorizeActivityHost(c.Request().Context(), callerID, activityID)
		if err != nil {
			m.logger.Error("Host check failed on store fault",
				slog.Any("userID", callerID), slog.Any("activityID", activityID), slog.Any("error", err))

			return domainerrors.NewDatabaseExecuteError(err, "host capability check unavailable")
		}
		if !isHost {
			return domainerrors.ErrForbidden.WrapMessage("caller does not host this activity")
		}

		return next(c)
	}
}
