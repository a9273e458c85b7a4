package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/service"
)

type Middleware struct {
	Svc *service.AuthService
}

func New(svc *service.AuthService) *Middleware {
	return &Middleware{Svc: svc}
}

func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		rawToken, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || rawToken == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		user, err := m.Svc.Authenticate(c.Request().Context(), rawToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		setUserContext(c, user)
		return next(c)
	}
}
