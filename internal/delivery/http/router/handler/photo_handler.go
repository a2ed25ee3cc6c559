package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/delivery/http/response"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PhotoHandler holds dependencies for profile photo handlers.
type PhotoHandler struct {
	uc     usecase.PhotoUsecase
	logger *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.PhotoUsecase, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add uploads a profile photo from a multipart form.
func (h *PhotoHandler) Add(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("photo upload without authenticated identity")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)

	photo, err := h.uc.AddPhoto(c.Request().Context(), userID, file, contentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id":     photo.ID,
		"url":    photo.URL,
		"isMain": photo.IsMain,
	}, "Photo added")
}

// SetMain marks a photo as the user's main photo.
func (h *PhotoHandler) SetMain(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("photo update without authenticated identity")
	}

	if err := h.uc.SetMainPhoto(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Main photo updated")
}

// Delete removes a non-main photo.
func (h *PhotoHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("photo deletion without authenticated identity")
	}

	if err := h.uc.DeletePhoto(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo deleted")
}
