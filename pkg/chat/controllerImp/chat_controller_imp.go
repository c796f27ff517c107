package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropcast/pkg/apperr"
	"cropcast/pkg/chat/controller"
	"cropcast/pkg/chat/service"
	"cropcast/pkg/middleware"
)

type chatCtrl struct{ s service.ChatService }

func New(s service.ChatService) controller.ChatController { return &chatCtrl{s} }

type sendReq struct {
	Message string `json:"message"`
}

// Send serves POST /functions/v1/cropcast-chat.
func (h *chatCtrl) Send(c echo.Context) error {
	var req sendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	answer, err := h.s.Send(c.Request().Context(), middleware.UserID(c), req.Message)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"response": answer})
}

func (h *chatCtrl) History(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	list, err := h.s.History(middleware.UserID(c), limit)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
