package middleware

import (
	"log/slog"
	"strings"

	"leadhub/internal/delivery/api/response"
	deliverycontext "leadhub/internal/delivery/context"
	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// AuthMiddleware validates bearer tokens and exposes the caller to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		caller, err := m.tokenSvc.ParseAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetCaller(c, caller)
		deliverycontext.EnrichLogger(c,
			slog.String("user_id", caller.UserID.String()),
			slog.String("role", caller.Role.String()),
		)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := GetCaller(c)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing")
			}

			if !entity.Roles(roles).Contains(caller.Role) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied for role "+caller.Role.String())
			}

			return next(c)
		}
	}
}

// SetCaller stores the caller for downstream handlers.
func SetCaller(c echo.Context, caller *entity.Caller) {
	c.Set(callerKey, caller)
}

// GetCaller returns the authenticated caller stored by Authenticate.
func GetCaller(c echo.Context) (*entity.Caller, bool) {
	caller, ok := c.Get(callerKey).(*entity.Caller)

	return caller, ok && caller != nil
}
