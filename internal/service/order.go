package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ovsienko/orderdesk/internal/logging"
	"github.com/ovsienko/orderdesk/internal/models"
	"github.com/ovsienko/orderdesk/internal/repo"
	"github.com/ovsienko/orderdesk/internal/transport"
)

const dateLayout = "2006-01-02"

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) Create(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.create", "user_id", userID)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for i := range req.Items {
		if req.Items[i].Category == "" {
			return nil, fmt.Errorf("%w: category required", ErrValidation)
		}
		if req.Items[i].Color == "" {
			return nil, fmt.Errorf("%w: color required", ErrValidation)
		}
		if req.Items[i].Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
		}
		items = append(items, models.OrderItem{
			Category: req.Items[i].Category,
			Color:    req.Items[i].Color,
			Quantity: uint(req.Items[i].Quantity),
		})
	}

	order, err := s.Repo.CreateOrder(ctx, userID, items)
	if err != nil {
		l.Error("create_order_error", "status", 500, "error", err)
		return nil, err
	}

	l.Info("create_order_success", "order_id", order.ID, "items", len(order.Items))
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint, startDate, endDate string) ([]models.Order, error) {
	from, to, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListOrders(ctx, userID, from, to)
}

// parseDateRange turns inclusive calendar dates into a [from, to) window:
// the start date at 00:00:00 UTC and the day after the end date at 00:00:00.
func parseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if startDate != "" {
		t, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid startDate", ErrValidation)
		}
		from = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid endDate", ErrValidation)
		}
		next := t.AddDate(0, 0, 1)
		to = &next
	}
	return from, to, nil
}
