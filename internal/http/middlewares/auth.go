package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	apperrors "bughunt-platform.com/bughunt-platform/internal/errors"
	"bughunt-platform.com/bughunt-platform/internal/services"
)

const identityKey = "identity"

// Auth resolves the bearer credential to the acting user and attaches it to
// the request context. Both "Authorization: Bearer <token>" and a bare
// token value are accepted.
func Auth(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(
					apperrors.ErrAuthRequired.StatusCode,
					apperrors.ErrAuthRequired.Message,
				)
			}

			token := strings.TrimPrefix(header, "Bearer ")

			identity, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// AdminOnly guards admin routes; it must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil || identity.Role != constants.RoleAdmin {
				return echo.NewHTTPError(
					apperrors.ErrAdminOnly.StatusCode,
					apperrors.ErrAdminOnly.Message,
				)
			}
			return next(c)
		}
	}
}

func IdentityFrom(c echo.Context) *services.Identity {
	identity, _ := c.Get(identityKey).(*services.Identity)
	return identity
}
