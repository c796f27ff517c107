package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/auth"
	"cropcast/pkg/auth/controller"
	"cropcast/pkg/middleware"
	profileSvc "cropcast/pkg/profile/service"
)

type authCtrl struct {
	profiles profileSvc.ProfileService
	issuer   *auth.Issuer
}

func NewAuthController(profiles profileSvc.ProfileService, issuer *auth.Issuer) controller.AuthController {
	return &authCtrl{profiles: profiles, issuer: issuer}
}

type tokenReq struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type tokenResp struct {
	AccessToken string           `json:"access_token"`
	User        entities.Profile `json:"user"`
}

// DevLogin signs a caller in by email alone. Only mounted when dev login is enabled.
func (h *authCtrl) DevLogin(c echo.Context) error {
	var req tokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.profiles.Ensure(&entities.Profile{ID: req.UserID, Email: req.Email, FullName: req.FullName})
	if err != nil {
		return apperr.JSON(c, err)
	}
	tok, err := h.issuer.Issue(*p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: tok, User: *p})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	p, err := h.profiles.Get(middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
