package middleware

import (
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware turns access tokens into request sessions.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate attaches a Session when an Authorization header is present.
// Anonymous requests pass through; a malformed or invalid token is rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header must be a Bearer token")
		}

		session, err := m.tokenSvc.ParseSession(strings.TrimSpace(tokenString))
		if err != nil {
			return err
		}

		ctx := deliverycontext.WithSession(c.Request().Context(), session)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("user_id", session.UserID.String()))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
