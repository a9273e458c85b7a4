package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ovsienko/orderdesk/internal/db"
	"github.com/ovsienko/orderdesk/internal/hash"
	"github.com/ovsienko/orderdesk/internal/httpserver"
	authmw "github.com/ovsienko/orderdesk/internal/middleware/auth"
	"github.com/ovsienko/orderdesk/internal/models"
	"github.com/ovsienko/orderdesk/internal/repo"
	"github.com/ovsienko/orderdesk/internal/service"
	"github.com/ovsienko/orderdesk/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
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

	rp := &repo.GormRepo{DB: gdb}
	authSvc := &service.AuthService{Repo: rp, JWTSecret: testSecret}

	deps := &httpserver.Deps{
		AuthHandler:  &httpserver.AuthHTTP{Svc: authSvc},
		OrderHandler: &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: rp}},
		AdminHandler: &httpserver.AdminHTTP{Svc: &service.AdminService{Repo: rp}},
		AuthMW:       authmw.New(authSvc),
	}

	e := echo.New()
	httpserver.Register(e, deps)

	return &testEnv{T: t, E: e, DB: gdb}
}

func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		rd = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder, out any) {
	env.T.Helper()
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), out))
}

// createUserWithToken seeds a user and mints a valid token for them.
func (env *testEnv) createUserWithToken(username, phone string, role models.Role) (*models.User, string) {
	env.T.Helper()

	pwHash, err := hash.HashPassword("password")
	require.NoError(env.T, err)

	user := &models.User{
		Username:     username,
		Phone:        phone,
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(env.T, env.DB.Create(user).Error)

	token, err := tokens.Sign(user.ID, user.Role, testSecret)
	require.NoError(env.T, err)
	return user, token
}

func (env *testEnv) createOrderAt(userID uint, createdAt time.Time, delivered bool) *models.Order {
	env.T.Helper()

	order := &models.Order{
		UserID:    userID,
		CreatedAt: createdAt,
		Status:    delivered,
		Items: []models.OrderItem{
			{Category: "shirt", Color: "blue", Quantity: 1},
		},
	}
	require.NoError(env.T, env.DB.Create(order).Error)
	return order
}
