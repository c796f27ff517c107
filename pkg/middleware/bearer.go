package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropcast/pkg/auth"
)

const ctxUID = "uid"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Bearer rejects requests without a valid "Authorization: Bearer <jwt>" header
// and stores the caller's identity on the context.
func Bearer(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if h == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No authorization header"})
			}
			tok, ok := strings.CutPrefix(h, "Bearer ")
			if !ok || strings.TrimSpace(tok) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid authorization header"})
			}
			claims, err := v.Verify(strings.TrimSpace(tok))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not authenticated"})
			}
			c.Set(ctxUID, claims.Subject)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller, or "" outside Bearer.
func UserID(c echo.Context) string {
	uid, _ := c.Get(ctxUID).(string)
	return uid
}
