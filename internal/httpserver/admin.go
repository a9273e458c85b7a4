package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/logging"
	"github.com/ovsienko/orderdesk/internal/mykafka"
	"github.com/ovsienko/orderdesk/internal/service"
)

type AdminHTTP struct {
	Svc      *service.AdminService
	Producer *mykafka.Producer
}

func (h *AdminHTTP) Stats(c echo.Context) error {
	stats, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHTTP) UndeliveredOrders(c echo.Context) error {
	orders, err := h.Svc.UndeliveredOrders(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHTTP) MarkDelivered(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.mark_delivered")

	id, err := strconv.Atoi(c.Param("billno"))
	if err != nil || id <= 0 {
		l.Warn("mark_delivered_error", "status", 400, "reason", "invalid billno")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.Svc.MarkDelivered(ctx, uint(id))
	if err != nil {
		return toHTTPError(err)
	}

	publishEvent(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]interface{}{
		"type":     "order_delivered",
		"order_id": order.ID,
		"user_id":  order.UserID,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "order delivered"})
}

func (h *AdminHTTP) ListUsers(c echo.Context) error {
	users, err := h.Svc.ListUsers(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHTTP) UserDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.Svc.UserDetail(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHTTP) OrdersForUser(c echo.Context) error {
	raw := c.QueryParam("userId")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	orders, err := h.Svc.OrdersForUser(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, orders)
}
