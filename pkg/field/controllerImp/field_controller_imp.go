package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/field/controller"
	"cropcast/pkg/field/service"
	"cropcast/pkg/middleware"
)

type FieldCtrl struct{ s service.FieldService }

func New(s service.FieldService) controller.FieldController { return &FieldCtrl{s} }

type createReq struct {
	FieldName     string   `json:"field_name"`
	SoilType      string   `json:"soil_type"`
	FieldLocation string   `json:"field_location"`
	AreaSize      float64  `json:"area_size"`
	PreviousCrops []string `json:"previous_crops"`
}

// List serves GET /farms/:id/fields.
func (h *FieldCtrl) List(c echo.Context) error {
	list, err := h.s.ListByFarm(c.Param("id"), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, err := h.s.Get(c.Param("id"), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// Create serves POST /farms/:id/fields.
func (h *FieldCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Field{
		FieldName:     req.FieldName,
		SoilType:      req.SoilType,
		FieldLocation: req.FieldLocation,
		AreaSize:      req.AreaSize,
		PreviousCrops: req.PreviousCrops,
	}
	out, err := h.s.Create(c.Param("id"), middleware.UserID(c), f)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FieldCtrl) Patch(c echo.Context) error {
	var p service.FieldPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.s.UpdatePartial(c.Param("id"), middleware.UserID(c), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
		return apperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
