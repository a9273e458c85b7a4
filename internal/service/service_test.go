package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ovsienko/orderdesk/internal/db"
	"github.com/ovsienko/orderdesk/internal/hash"
	"github.com/ovsienko/orderdesk/internal/models"
	"github.com/ovsienko/orderdesk/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func newTestRepo(t *testing.T) (*gorm.DB, *repo.GormRepo) {
	t.Helper()
	gdb := newTestDB(t)
	return gdb, &repo.GormRepo{DB: gdb}
}

func createUser(t *testing.T, gdb *gorm.DB, username, phone string, role models.Role) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword("password")
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Phone:        phone,
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

func createOrderAt(t *testing.T, gdb *gorm.DB, userID uint, createdAt time.Time, delivered bool) *models.Order {
	t.Helper()

	order := &models.Order{
		UserID:    userID,
		CreatedAt: createdAt,
		Status:    delivered,
		Items: []models.OrderItem{
			{Category: "shirt", Color: "blue", Quantity: 1},
		},
	}
	require.NoError(t, gdb.Create(order).Error)
	return order
}
