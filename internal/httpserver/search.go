package httpserver

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/service/search"
)

const defaultSearchSize = 20

type SearchHTTP struct {
	ES *elasticsearch.Client
}

func (h *SearchHTTP) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	from := parseIntDefault(c.QueryParam("from"), 0)
	size := parseIntDefault(c.QueryParam("size"), defaultSearchSize)

	total, orders, err := search.Search(c.Request().Context(), h.ES, q, from, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "orders": orders})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
