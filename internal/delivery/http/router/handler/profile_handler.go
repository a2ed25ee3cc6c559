package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/delivery/http/response"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and social-graph handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleFollow follows or unfollows the named user.
func (h *ProfileHandler) ToggleFollow(c echo.Context) error {
	observerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("follow toggle without authenticated identity")
	}

	targetUserName := c.Param("username")
	if targetUserName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("missing username").
			WrapMessage("follow toggle rejected")
	}

	if err := h.uc.ToggleFollow(c.Request().Context(), observerID, targetUserName); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Following updated")
}

// ListFollowers lists the users following the named user.
func (h *ProfileHandler) ListFollowers(c echo.Context) error {
	users, err := h.uc.ListFollowers(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserListResponse(users), "")
}

// ListFollowing lists the users the named user follows.
func (h *ProfileHandler) ListFollowing(c echo.Context) error {
	users, err := h.uc.ListFollowing(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserListResponse(users), "")
}

// ListActivities lists the named user's activities narrowed by the filter
// query parameter (past, future, hosting).
func (h *ProfileHandler) ListActivities(c echo.Context) error {
	filter := repository.ActivityFilter(c.QueryParam("filter"))
	switch filter {
	case repository.ActivityFilterAll, repository.ActivityFilterPast,
		repository.ActivityFilterFuture, repository.ActivityFilterHosting:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown activity filter").
			WrapMessage("activity listing rejected")
	}

	activities, err := h.uc.ListActivities(c.Request().Context(), c.Param("username"), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActivityListResponse(activities), "")
}

func newUserListResponse(users []*entity.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}
