// Package handler contains the HTTP handlers for the application.
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

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshTokenCookie is the cookie carrying the refresh token value. The
// cookie is the only place the raw value ever travels; response bodies carry
// the access token alone.
const refreshTokenCookie = "refreshToken"

// AccountHandler holds dependencies for session and account handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// sessionResponse is the body returned when a session is established or
// refreshed. The refresh token is deliberately absent.
type sessionResponse struct {
	ID           string `json:"id"`
	UserName     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	MainPhotoURL string `json:"image,omitempty"`
	AccessToken  string `json:"token"`
}

func newSessionResponse(output *usecase.SessionOutput) *sessionResponse {
	return &sessionResponse{
		ID:           output.User.ID.String(),
		UserName:     output.User.UserName,
		DisplayName:  output.User.DisplayName,
		Email:        output.User.Email,
		Bio:          output.User.Bio,
		MainPhotoURL: output.User.MainPhotoURL(),
		AccessToken:  output.AccessToken,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken, output.RefreshExpiresAt)

	return response.Success(c, http.StatusCreated, newSessionResponse(output), "Account registered")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken, output.RefreshExpiresAt)

	return response.Success(c, http.StatusOK, newSessionResponse(output), "Login successful")
}

// Refresh rotates the refresh token presented in the cookie and mints a new
// access token. Both rejection reasons surface as one uniform 401 so a client
// cannot distinguish a guessed token from a replayed one.
func (h *AccountHandler) Refresh(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("refresh without authenticated identity")
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		UserID:         userID,
		PresentedToken: h.readRefreshCookie(c),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrRefreshUnrecognized) || errors.Is(err, usecase.ErrRefreshInactive) {
			h.clearRefreshCookie(c)

			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh rejected")
		}

		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken, output.RefreshExpiresAt)

	return response.Success(c, http.StatusOK, newSessionResponse(output), "Session refreshed")
}

// Logout terminates the session matching the cookie and clears it. Logging
// out an already-dead session still succeeds.
func (h *AccountHandler) Logout(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("logout without authenticated identity")
	}

	err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		UserID:         userID,
		PresentedToken: h.readRefreshCookie(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// CurrentUser returns the authenticated user's account data.
func (h *AccountHandler) CurrentUser(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("current user without authenticated identity")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "")
}

// userResponse is the public shape of an account.
type userResponse struct {
	ID           string `json:"id"`
	UserName     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Bio          string `json:"bio,omitempty"`
	MainPhotoURL string `json:"image,omitempty"`
}

func newUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:           user.ID.String(),
		UserName:     user.UserName,
		DisplayName:  user.DisplayName,
		Bio:          user.Bio,
		MainPhotoURL: user.MainPhotoURL(),
	}
}

func (h *AccountHandler) readRefreshCookie(c echo.Context) string {
	cookie, err := c.Cookie(refreshTokenCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// setRefreshCookie writes the rotation cookie. HttpOnly keeps the value away
// from scripts, Secure keeps it off plaintext transports, and SameSite=Lax
// stops cross-site POSTs from carrying it.
func (h *AccountHandler) setRefreshCookie(c echo.Context, value string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AccountHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
