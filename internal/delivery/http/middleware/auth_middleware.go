// Package middleware contains the HTTP middleware chain: request context,
// access token authentication, host capability checks and error rendering.
package middleware

import (
	"strings"

	deliverycontext "gather/internal/delivery/context"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the JWT access token on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the authenticated
// identity on the context. All failure shapes (missing header, malformed
// token, bad signature, expired) collapse into one 401; the distinction is
// nothing a legitimate client can act on.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("access token rejected")
		}

		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetUserName(c, claims.UserName)
		deliverycontext.SetUserEmail(c, claims.Email)

		return next(c)
	}
}
