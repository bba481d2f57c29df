package roles

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marqhealth/clinic/internal/platform/auth"
)

// RequireMedicalAccess gates a route group on the caller's stored role.
// The role is re-resolved against the store on every request; a denied
// request gets a terminal 403, never a retry hint.
func RequireMedicalAccess(resolver *Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			id, ok := auth.IdentityFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			role := resolver.Resolve(ctx, id.UserID)
			if !role.HasMedicalAccess() {
				return echo.NewHTTPError(http.StatusForbidden,
					"apenas médicos e administradores podem acessar os dados dos pacientes")
			}
			return next(c)
		}
	}
}
