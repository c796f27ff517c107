package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/crop/controller"
	"cropcast/pkg/crop/service"
	"cropcast/pkg/middleware"
)

type CropCtrl struct{ s service.CropService }

func New(s service.CropService) controller.CropController { return &CropCtrl{s} }

type createReq struct {
	CropType            string             `json:"crop_type"`
	Variety             string             `json:"variety"`
	CurrentStage        entities.CropStage `json:"current_stage"`
	PlantingDate        *string            `json:"planting_date"`
	ExpectedHarvestDate *string            `json:"expected_harvest_date"`
}

func (h *CropCtrl) List(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		}
		limit = n
	}
	list, err := h.s.ListByFarm(c.Param("id"), middleware.UserID(c), limit)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop := &entities.Crop{
		CropType:            req.CropType,
		Variety:             req.Variety,
		CurrentStage:        req.CurrentStage,
		PlantingDate:        req.PlantingDate,
		ExpectedHarvestDate: req.ExpectedHarvestDate,
	}
	out, err := h.s.Create(c.Param("id"), middleware.UserID(c), crop)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) Patch(c echo.Context) error {
	var p service.CropPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.UpdatePartial(c.Param("id"), middleware.UserID(c), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
		return apperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
