package httpserver

import (
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/logging"
	authmw "github.com/ovsienko/orderdesk/internal/middleware/auth"
	"github.com/ovsienko/orderdesk/internal/mykafka"
	"github.com/ovsienko/orderdesk/internal/service"
	"github.com/ovsienko/orderdesk/internal/service/search"
	"github.com/ovsienko/orderdesk/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	user := authmw.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Create(ctx, user.ID, req)
	if err != nil {
		return toHTTPError(err)
	}

	publishEvent(c, h.Producer, "order_events", fmt.Sprint(user.ID), map[string]interface{}{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  user.ID,
		"items":    len(order.Items),
	})

	if h.ES != nil {
		if err := search.Index(ctx, h.ES, order); err != nil {
			l.Warn("order_index_failed", "order_id", order.ID, "error", err)
		}
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	user := authmw.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	orders, err := h.Svc.ListForUser(ctx, user.ID, c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		l.Warn("list_orders_error", "error", err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, orders)
}
