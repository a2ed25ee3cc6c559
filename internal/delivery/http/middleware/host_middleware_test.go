package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "gather/internal/delivery/context"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/service"
	mockSvc "gather/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthorizationUsecase answers the host question with a canned result.
type stubAuthorizationUsecase struct {
	isHost bool
	err    error
}

func (s *stubAuthorizationUsecase) AuthorizeActivityHost(ctx context.Context, callerID, activityID uuid.UUID) (bool, error) {
	return s.isHost, s.err
}

func newHostCheckContext(activityID string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/activities/"+activityID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(activityID)

	return c
}

func nextSentinel(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestHostMiddleware_RequireActivityHost_HostPasses(t *testing.T) {
	m := NewHostMiddleware(&stubAuthorizationUsecase{isHost: true}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c := newHostCheckContext(uuid.NewString())
	deliverycontext.SetUserID(c, uuid.New())

	var called bool
	err := m.RequireActivityHost(nextSentinel(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestHostMiddleware_RequireActivityHost_NonHostDenied(t *testing.T) {
	m := NewHostMiddleware(&stubAuthorizationUsecase{isHost: false}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c := newHostCheckContext(uuid.NewString())
	deliverycontext.SetUserID(c, uuid.New())

	var called bool
	err := m.RequireActivityHost(nextSentinel(&called))(c)

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestHostMiddleware_RequireActivityHost_MissingIdentity(t *testing.T) {
	m := NewHostMiddleware(&stubAuthorizationUsecase{isHost: true}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c := newHostCheckContext(uuid.NewString())

	var called bool
	err := m.RequireActivityHost(nextSentinel(&called))(c)

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestHostMiddleware_RequireActivityHost_UnparseableID(t *testing.T) {
	m := NewHostMiddleware(&stubAuthorizationUsecase{isHost: true}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c := newHostCheckContext("not-a-uuid")
	deliverycontext.SetUserID(c, uuid.New())

	var called bool
	err := m.RequireActivityHost(nextSentinel(&called))(c)

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

// A store fault must surface as a retryable 5xx, never as a 403: the client's
// credential may be perfectly valid.
func TestHostMiddleware_RequireActivityHost_StoreFaultIsNot403(t *testing.T) {
	m := NewHostMiddleware(&stubAuthorizationUsecase{err: errors.New("connection reset")},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	c := newHostCheckContext(uuid.NewString())
	deliverycontext.SetUserID(c, uuid.New())

	var called bool
	err := m.RequireActivityHost(nextSentinel(&called))(c)

	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("valid-token").Return(&service.AccessClaims{
		UserID:   userID,
		UserName: "alice",
		Email:    "alice@example.com",
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	c := e.NewContext(req, httptest.NewRecorder())

	var called bool
	err := m.Authenticate(nextSentinel(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)

	gotID, ok := deliverycontext.GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "alice", deliverycontext.GetUserName(c))
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
		stub   func(tokenSvc *mockSvc.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{
			name:   "rejected token",
			header: "Bearer tampered-token",
			stub: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("tampered-token").Return(nil, errors.New("signature invalid"))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tc.stub != nil {
				tc.stub(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/account", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var called bool
			err := m.Authenticate(nextSentinel(&called))(c)

			assert.False(t, called)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
		})
	}
}
