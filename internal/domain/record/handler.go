package record

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the record view endpoint on an access-gated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/patients/:id/view", h.View)
}

// View returns the reconciled record view. ?report=<uuid> selects a
// specific report from the history; the default is the newest one.
func (h *Handler) View(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var reportID *uuid.UUID
	if q := c.QueryParam("report"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid report id")
		}
		reportID = &id
	}

	view, err := h.svc.View(c.Request().Context(), patientID, reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPatientNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "paciente não encontrado")
		case errors.Is(err, ErrReportNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "relatório não encontrado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, view)
}
