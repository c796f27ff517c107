package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcast/pkg/apperr"
	"cropcast/pkg/middleware"
	"cropcast/pkg/recommend"
	"cropcast/pkg/recommend/controller"
	"cropcast/pkg/recommend/service"
)

type recommendCtrl struct{ s service.RecommendService }

func New(s service.RecommendService) controller.RecommendController { return &recommendCtrl{s} }

// Generate serves POST /functions/v1/crop-recommendation.
func (h *recommendCtrl) Generate(c echo.Context) error {
	var req recommend.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	resp, err := h.s.Generate(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *recommendCtrl) History(c echo.Context) error {
	list, err := h.s.History(c.Param("id"), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
