package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/ovsienko/orderdesk/internal/models"
)

const userContextKey = "user"

func setUserContext(c echo.Context, user *models.User) {
	c.Set(userContextKey, user)
}

func CurrentUser(c echo.Context) *models.User {
	if v := c.Get(userContextKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
