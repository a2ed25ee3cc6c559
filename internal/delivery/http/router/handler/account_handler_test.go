package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/delivery/http/validator"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase answers every call with fixed outputs, letting the tests
// focus on the HTTP boundary: cookie attributes and rejection uniformity.
type stubAccountUsecase struct {
	session    *usecase.SessionOutput
	refreshErr error
}

func (s *stubAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	return s.session, nil
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	return s.session, nil
}

func (s *stubAccountUsecase) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.SessionOutput, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}

	return s.session, nil
}

func (s *stubAccountUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	return nil
}

func (s *stubAccountUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.session.User, nil
}

func newSessionFixture() *usecase.SessionOutput {
	return &usecase.SessionOutput{
		User: &entity.User{
			ID:          uuid.New(),
			UserName:    "alice",
			DisplayName: "Alice",
			Email:       "alice@example.com",
		},
		AccessToken:      "access-token",
		RefreshToken:     "opaque-refresh-value",
		RefreshExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAccountHandler_Login_SetsHardenedRefreshCookie(t *testing.T) {
	session := newSessionFixture()
	h := NewAccountHandler(&stubAccountUsecase{session: session}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"correct-password"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, "refreshToken")
	require.NotNil(t, cookie)
	assert.Equal(t, "opaque-refresh-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.WithinDuration(t, session.RefreshExpiresAt, cookie.Expires, time.Minute)

	// The raw refresh value must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "opaque-refresh-value")
	assert.Contains(t, rec.Body.String(), "access-token")
}

func TestAccountHandler_Refresh_RotatesCookie(t *testing.T) {
	session := newSessionFixture()
	h := NewAccountHandler(&stubAccountUsecase{session: session}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-refresh-value"})
	deliverycontext.SetUserID(c, session.User.ID)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, "refreshToken")
	require.NotNil(t, cookie)
	assert.Equal(t, "opaque-refresh-value", cookie.Value)
}

// Unrecognized and inactive rejections must be byte-for-byte identical at the
// boundary, and both clear the cookie.
func TestAccountHandler_Refresh_UniformRejection(t *testing.T) {
	session := newSessionFixture()

	reject := func(t *testing.T, reason error) (error, *http.Cookie) {
		h := NewAccountHandler(&stubAccountUsecase{session: session, refreshErr: reason},
			slog.New(slog.NewTextHandler(io.Discard, nil)))

		c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "presented-value"})
		deliverycontext.SetUserID(c, session.User.ID)

		err := h.Refresh(c)
		require.Error(t, err)

		return err, findCookie(t, rec, "refreshToken")
	}

	errUnrecognized, cookieUnrecognized := reject(t, usecase.ErrRefreshUnrecognized)
	errInactive, cookieInactive := reject(t, usecase.ErrRefreshInactive)

	var appErrUnrecognized, appErrInactive domainerrors.AppError
	require.ErrorAs(t, errUnrecognized, &appErrUnrecognized)
	require.ErrorAs(t, errInactive, &appErrInactive)

	assert.Equal(t, http.StatusUnauthorized, appErrUnrecognized.HTTPCode())
	assert.Equal(t, appErrUnrecognized.HTTPCode(), appErrInactive.HTTPCode())
	assert.Equal(t, appErrUnrecognized.ErrorCode(), appErrInactive.ErrorCode())
	assert.Equal(t, appErrUnrecognized.Message(), appErrInactive.Message())

	require.NotNil(t, cookieUnrecognized)
	require.NotNil(t, cookieInactive)
	assert.Equal(t, -1, cookieUnrecognized.MaxAge)
	assert.Equal(t, -1, cookieInactive.MaxAge)
}

func TestAccountHandler_Refresh_WithoutIdentity(t *testing.T) {
	h := NewAccountHandler(&stubAccountUsecase{session: newSessionFixture()},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, http.MethodPost, "/auth/refresh", "")

	err := h.Refresh(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAccountHandler_Logout_ClearsCookie(t *testing.T) {
	session := newSessionFixture()
	h := NewAccountHandler(&stubAccountUsecase{session: session}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "refresh-value"})
	deliverycontext.SetUserID(c, session.User.ID)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, "refreshToken")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAccountHandler_Register_ValidationRejected(t *testing.T) {
	h := NewAccountHandler(&stubAccountUsecase{session: newSessionFixture()},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Password below the minimum length.
	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"bob","displayName":"Bob","email":"bob@example.com","password":"short"}`)

	err := h.Register(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}
