package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/logging"
	authmw "github.com/ovsienko/orderdesk/internal/middleware/auth"
	"github.com/ovsienko/orderdesk/internal/mykafka"
	"github.com/ovsienko/orderdesk/internal/service"
	"github.com/ovsienko/orderdesk/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *mykafka.Producer
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Register(ctx, req.Username, req.Phone, req.Password); err != nil {
		return toHTTPError(err)
	}

	publishEvent(c, h.Producer, "user_events", req.Username, map[string]interface{}{
		"type":     "user_registered",
		"username": req.Username,
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "user created"})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Phone, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	publishEvent(c, h.Producer, "user_events", req.Phone, map[string]interface{}{
		"type":  "user_logged_in",
		"phone": req.Phone,
	})

	return c.JSON(http.StatusOK, res)
}

// Profile returns the authenticated user's record. The password hash is
// excluded by the model's json tag.
func (h *AuthHTTP) Profile(c echo.Context) error {
	user := authmw.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	logging.FromContext(c.Request().Context()).
		Info("profile_fetched", "user_id", fmt.Sprint(user.ID))
	return c.JSON(http.StatusOK, user)
}
