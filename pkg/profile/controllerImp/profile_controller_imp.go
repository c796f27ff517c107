package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcast/pkg/apperr"
	"cropcast/pkg/middleware"
	"cropcast/pkg/profile/controller"
	"cropcast/pkg/profile/service"
)

type profileCtrl struct{ s service.ProfileService }

func New(s service.ProfileService) controller.ProfileController { return &profileCtrl{s} }

func (h *profileCtrl) Get(c echo.Context) error {
	p, err := h.s.Get(middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *profileCtrl) Update(c echo.Context) error {
	var patch service.ProfilePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.s.Update(middleware.UserID(c), patch)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
