package transport

import "github.com/ovsienko/orderdesk/internal/models"

type SignupRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	Authority models.Role `json:"authority"`
}

type CreateOrderItem struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
}

type StatsResponse struct {
	UserCount        int64 `json:"userCount"`
	RecentOrderCount int64 `json:"recentOrderCount"`
}

type UndeliveredOrder struct {
	models.Order
	Username string `json:"username"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
}
