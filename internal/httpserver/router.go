package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/ovsienko/orderdesk/internal/middleware/auth"
)

type Deps struct {
	AuthHandler   *AuthHTTP
	OrderHandler  *OrderHTTP
	AdminHandler  *AdminHTTP
	SearchHandler *SearchHTTP // nil when elasticsearch is not configured
	AuthMW        *authmw.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/signup", d.AuthHandler.Signup)
	auth.POST("/login", d.AuthHandler.Login)

	api := e.Group("/api", d.AuthMW.RequireAuth)
	api.GET("/profile", d.AuthHandler.Profile)
	api.GET("/orders", d.OrderHandler.ListOrders)
	api.POST("/orders", d.OrderHandler.CreateOrder)

	admin := api.Group("/admin", d.AuthMW.RequireAdmin)
	admin.GET("/stats", d.AdminHandler.Stats)
	admin.GET("/orders", d.AdminHandler.OrdersForUser)
	admin.GET("/orders/undelivered", d.AdminHandler.UndeliveredOrders)
	admin.PUT("/orders/:billno/deliver", d.AdminHandler.MarkDelivered)
	admin.GET("/users", d.AdminHandler.ListUsers)
	admin.GET("/users/:userId", d.AdminHandler.UserDetail)

	if d.SearchHandler != nil {
		admin.GET("/orders/search", d.SearchHandler.Search)
	}
}
