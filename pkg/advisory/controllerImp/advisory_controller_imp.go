package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"cropcast/entities"
	"cropcast/pkg/advisory/repository"
	"cropcast/pkg/apperr"
	"cropcast/pkg/middleware"
)

type AdvisoryCtrl struct{ repo repository.AdvisoryRepository }

func New(repo repository.AdvisoryRepository) *AdvisoryCtrl { return &AdvisoryCtrl{repo} }

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *AdvisoryCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	list, err := h.repo.Latest(middleware.UserID(c), limit)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdvisoryCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	a := &entities.Advisory{
		UserID:      middleware.UserID(c),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
	}
	if err := h.repo.Create(a); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}
