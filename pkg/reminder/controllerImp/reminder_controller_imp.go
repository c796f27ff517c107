package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/middleware"
	"cropcast/pkg/reminder/controller"
	"cropcast/pkg/reminder/service"
)

type ReminderCtrl struct{ s service.ReminderService }

func New(s service.ReminderService) controller.ReminderController { return &ReminderCtrl{s} }

type createReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ReminderDate string `json:"reminder_date"`
}

func (h *ReminderCtrl) List(c echo.Context) error {
	list, err := h.s.List(middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ReminderCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Create(&entities.Reminder{
		UserID:       middleware.UserID(c),
		Title:        req.Title,
		Description:  req.Description,
		ReminderDate: req.ReminderDate,
	})
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ReminderCtrl) Patch(c echo.Context) error {
	var p service.ReminderPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.UpdatePartial(c.Param("id"), middleware.UserID(c), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReminderCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
		return apperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
