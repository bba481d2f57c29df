package patient

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/marqhealth/clinic/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the patient read endpoints on an access-gated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/patients/search", h.Search)
	g.GET("/patients/:id", h.Get)
}

func (h *Handler) Search(c echo.Context) error {
	limit := pagination.LimitFromContext(c)
	results, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if results == nil {
		results = []*Summary{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		// Terminal display state for the UI, not a retryable fault.
		return echo.NewHTTPError(http.StatusNotFound, "paciente não encontrado")
	}
	return c.JSON(http.StatusOK, p)
}
