package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/delivery/http/response"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for activity handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

// activityResponse is the public shape of an activity.
type activityResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category"`
	City        string             `json:"city"`
	Venue       string             `json:"venue"`
	IsCancelled bool               `json:"isCancelled"`
	HostID      string             `json:"hostId,omitempty"`
	Attendees   []attendeeResponse `json:"attendees"`
}

type attendeeResponse struct {
	UserID string `json:"userId"`
	IsHost bool   `json:"isHost"`
}

func newActivityResponse(activity *entity.Activity) *activityResponse {
	attendees := make([]attendeeResponse, 0, len(activity.Attendees))
	hostID := ""
	for _, attendee := range activity.Attendees {
		if attendee.IsHost {
			hostID = attendee.UserID.String()
		}
		attendees = append(attendees, attendeeResponse{
			UserID: attendee.UserID.String(),
			IsHost: attendee.IsHost,
		})
	}

	return &activityResponse{
		ID:          activity.ID.String(),
		Title:       activity.Title,
		Date:        activity.Date,
		Description: activity.Description,
		Category:    activity.Category,
		City:        activity.City,
		Venue:       activity.Venue,
		IsCancelled: activity.IsCancelled,
		HostID:      hostID,
		Attendees:   attendees,
	}
}

func newActivityListResponse(activities []*entity.Activity) []*activityResponse {
	out := make([]*activityResponse, 0, len(activities))
	for _, activity := range activities {
		out = append(out, newActivityResponse(activity))
	}

	return out
}

// Create handles activity creation.
func (h *ActivityHandler) Create(c echo.Context) error {
	callerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("activity creation without authenticated identity")
	}

	var input usecase.CreateActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	activity, err := h.uc.CreateActivity(c.Request().Context(), callerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newActivityResponse(activity), "Activity created")
}

// Get handles fetching a single activity.
func (h *ActivityHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid activity ID").
			WrapMessage("activity lookup rejected")
	}

	activity, err := h.uc.GetActivity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActivityResponse(activity), "")
}

// List handles listing all activities.
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.uc.ListActivities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActivityListResponse(activities), "")
}

// Update handles editing an activity. The host gate runs before this handler.
func (h *ActivityHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid activity ID").
			WrapMessage("activity update rejected")
	}

	var input usecase.UpdateActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	activity, err := h.uc.UpdateActivity(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActivityResponse(activity), "Activity updated")
}

// Delete handles removing an activity. The host gate runs before this handler.
func (h *ActivityHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid activity ID").
			WrapMessage("activity deletion rejected")
	}

	if err := h.uc.DeleteActivity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity deleted")
}

// Attend toggles the caller's attendance on an activity.
func (h *ActivityHandler) Attend(c echo.Context) error {
	callerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("attendance toggle without authenticated identity")
	}

	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid activity ID").
			WrapMessage("attendance toggle rejected")
	}

	if err := h.uc.ToggleAttendance(c.Request().Context(), callerID, activityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attendance updated")
}
