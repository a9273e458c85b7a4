package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ovsienko/orderdesk/internal/models"
)

func itemsInInsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id ASC")
}

// CreateOrder persists the order row and all of its item rows in a single
// transaction. On any failure nothing remains visible.
func (r *GormRepo) CreateOrder(ctx context.Context, userID uint, items []models.OrderItem) (*models.Order, error) {
	order := &models.Order{
		UserID:    userID,
		Status:    false,
		CreatedAt: time.Now().UTC(),
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = items
	return order, nil
}

// ListOrders returns the user's orders newest first, items preloaded in
// insertion order. from is an inclusive lower bound, to an exclusive upper
// bound; either may be nil.
func (r *GormRepo) ListOrders(ctx context.Context, userID uint, from, to *time.Time) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}

	var orders []models.Order
	err := q.Preload("Items", itemsInInsertionOrder).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) CountOrdersSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", since).
		Count(&total).Error
	return total, err
}

func (r *GormRepo) UndeliveredOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("status = ?", false).
		Preload("Items", itemsInInsertionOrder).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkDelivered flips the order's status to delivered. Calling it on an
// already delivered order is a no-op.
func (r *GormRepo) MarkDelivered(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	if !order.Status {
		if err := r.DB.WithContext(ctx).Model(&order).Update("status", true).Error; err != nil {
			return nil, err
		}
	}
	order.Status = true
	return &order, nil
}
