// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	deliverycontext "fittrack/internal/delivery/context"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests by resolving the bearer token to a user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and attaches the resolved
// user to the request context. Missing, malformed, unknown and revoked
// tokens all answer 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header must be a Bearer token")
		}

		user, err := m.tokenSvc.Validate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetAuthenticatedUser(c, user.ID, user.Username)

		return next(c)
	}
}
