package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ovsienko/orderdesk/internal/logging"
	"github.com/ovsienko/orderdesk/internal/models"
	"github.com/ovsienko/orderdesk/internal/repo"
	"github.com/ovsienko/orderdesk/internal/transport"
)

// recentWindow is the reporting window for stats and per-user order listings.
const recentWindow = 30 * 24 * time.Hour

type AdminService struct {
	Repo *repo.GormRepo
}

func (s *AdminService) Stats(ctx context.Context) (*transport.StatsResponse, error) {
	userCount, err := s.Repo.CountUsersByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().Add(-recentWindow)
	orderCount, err := s.Repo.CountOrdersSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return &transport.StatsResponse{
		UserCount:        userCount,
		RecentOrderCount: orderCount,
	}, nil
}

func (s *AdminService) UndeliveredOrders(ctx context.Context) ([]transport.UndeliveredOrder, error) {
	orders, err := s.Repo.UndeliveredOrders(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(orders))
	seen := make(map[uint]bool, len(orders))
	for _, o := range orders {
		if !seen[o.UserID] {
			seen[o.UserID] = true
			ids = append(ids, o.UserID)
		}
	}

	users, err := s.Repo.UsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	usernames := make(map[uint]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	out := make([]transport.UndeliveredOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, transport.UndeliveredOrder{
			Order:    o,
			Username: usernames[o.UserID],
		})
	}
	return out, nil
}

func (s *AdminService) MarkDelivered(ctx context.Context, orderID uint) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "admin.mark_delivered", "order_id", orderID)

	order, err := s.Repo.MarkDelivered(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("mark_delivered_error", "status", 404)
			return nil, fmt.Errorf("%w: order does not exist", ErrNotFound)
		}
		l.Error("mark_delivered_error", "status", 500, "error", err)
		return nil, err
	}

	l.Info("mark_delivered_success")
	return order, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]transport.UserSummary, error) {
	users, err := s.Repo.ListUsersByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}

	out := make([]transport.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, transport.UserSummary{ID: u.ID, Username: u.Username, Phone: u.Phone})
	}
	return out, nil
}

func (s *AdminService) UserDetail(ctx context.Context, userID uint) (*transport.UserSummary, error) {
	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: user does not exist", ErrNotFound)
		}
		return nil, err
	}
	return &transport.UserSummary{ID: user.ID, Username: user.Username, Phone: user.Phone}, nil
}

// OrdersForUser lists a user's orders within the fixed recent window.
func (s *AdminService) OrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	from := time.Now().UTC().Add(-recentWindow)
	return s.Repo.ListOrders(ctx, userID, &from, nil)
}
