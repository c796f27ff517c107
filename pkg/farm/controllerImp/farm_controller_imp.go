package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/farm/controller"
	"cropcast/pkg/farm/service"
	"cropcast/pkg/middleware"
)

type FarmCtrl struct{ s service.FarmService }

func New(s service.FarmService) controller.FarmController { return &FarmCtrl{s} }

type createReq struct {
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	AreaSize  float64  `json:"area_size"`
	SoilType  string   `json:"soil_type"`
}

func (h *FarmCtrl) List(c echo.Context) error {
	list, err := h.s.List(middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	f, err := h.s.Get(c.Param("id"), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Farm{
		UserID:    middleware.UserID(c),
		Name:      req.Name,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		AreaSize:  req.AreaSize,
		SoilType:  req.SoilType,
	}
	out, err := h.s.Create(f)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FarmCtrl) Patch(c echo.Context) error {
	var p service.FarmPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.s.UpdatePartial(c.Param("id"), middleware.UserID(c), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
		return apperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
