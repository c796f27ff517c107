package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropcast/pkg/apperr"
	"cropcast/pkg/climate"
	"cropcast/pkg/dashboard/service"
	"cropcast/pkg/middleware"
)

type DashboardCtrl struct{ s service.DashboardService }

func New(s service.DashboardService) *DashboardCtrl { return &DashboardCtrl{s} }

func (h *DashboardCtrl) Dashboard(c echo.Context) error {
	d, err := h.s.Load(c.Request().Context(), middleware.UserID(c), c.QueryParam("farm_id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Weather returns the synthetic snapshot for a location.
func (h *DashboardCtrl) Weather(c echo.Context) error {
	loc := strings.TrimSpace(c.QueryParam("location"))
	if loc == "" {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no location"})
	}
	return c.JSON(http.StatusOK, climate.Synthetic(loc))
}
