package httpserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovsienko/orderdesk/internal/models"
)

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUserWithToken("alice", "555-1", models.RoleUser)

	payload := map[string]any{"items": []map[string]any{
		{"category": "shirt", "color": "blue", "quantity": 2},
	}}

	rec := env.do(http.MethodPost, "/api/orders", payload, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	env.decode(rec, &order)
	assert.False(t, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "shirt", order.Items[0].Category)
	assert.Equal(t, "blue", order.Items[0].Color)
	assert.EqualValues(t, 2, order.Items[0].Quantity)
}

func TestCreateOrder_InvalidInputLeavesNoRows(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUserWithToken("alice", "555-1", models.RoleUser)

	payloads := []map[string]any{
		{},
		{"items": []map[string]any{}},
		{"items": []map[string]any{{"color": "blue", "quantity": 1}}},
		{"items": []map[string]any{{"category": "shirt", "color": "blue", "quantity": 0}}},
		{"items": []map[string]any{{"category": "shirt", "color": "blue", "quantity": -1}}},
		{"items": "not-a-list"},
	}

	for _, payload := range payloads {
		rec := env.do(http.MethodPost, "/api/orders", payload, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	var orders, items int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, env.DB.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrder_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/orders", map[string]any{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUserWithToken("alice", "555-1", models.RoleUser)
	other, _ := env.createUserWithToken("bob", "555-2", models.RoleUser)

	old := env.createOrderAt(user.ID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), false)
	recent := env.createOrderAt(user.ID, time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC), false)
	env.createOrderAt(other.ID, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), false)

	rec := env.do(http.MethodGet, "/api/orders", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	env.decode(rec, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, recent.ID, orders[0].ID)
	assert.Equal(t, old.ID, orders[1].ID)
	require.Len(t, orders[0].Items, 1)
}

func TestListOrders_DateFilterInclusive(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUserWithToken("alice", "555-1", models.RoleUser)

	inRange := env.createOrderAt(user.ID, time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC), false)
	env.createOrderAt(user.ID, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), false)
	env.createOrderAt(user.ID, time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC), false)

	rec := env.do(http.MethodGet, "/api/orders?startDate=2026-03-01&endDate=2026-03-05", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	env.decode(rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, inRange.ID, orders[0].ID)
}

func TestListOrders_BadDate(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUserWithToken("alice", "555-1", models.RoleUser)

	rec := env.do(http.MethodGet, "/api/orders?startDate=yesterday", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
