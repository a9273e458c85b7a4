package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/logging"
	"github.com/ovsienko/orderdesk/internal/mykafka"
	"github.com/ovsienko/orderdesk/internal/service"
)

// toHTTPError maps service-layer sentinel errors to HTTP statuses. Anything
// unrecognized becomes a generic 500 so internals never leak to the client.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, reason(err))
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, reason(err))
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, reason(err))
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, reason(err))
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, reason(err))
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func reason(err error) string {
	if _, detail, ok := strings.Cut(err.Error(), ": "); ok {
		return detail
	}
	return err.Error()
}

func publishEvent(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]interface{}) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka publish failed", "topic", topic, "error", err)
	}
}
