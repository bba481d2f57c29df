package roles

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marqhealth/clinic/internal/platform/auth"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// RegisterRoutes mounts the identity endpoint. It sits outside the
// medical-access gate: every authenticated user may ask who they are.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
}

// Me returns the caller's identity, resolved role and access flag. The
// role is resolved fresh on each call.
func (h *Handler) Me(c echo.Context) error {
	ident, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	role := h.resolver.Resolve(c.Request().Context(), ident.UserID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user_id":            ident.UserID,
		"email":              ident.Email,
		"role":               role,
		"role_label":         role.DisplayLabel(),
		"has_medical_access": role.HasMedicalAccess(),
	})
}
