package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/models"
)

// RequireAdmin must run after RequireAuth.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}
		if user.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}
		return next(c)
	}
}
