package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ovsienko/orderdesk/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	var existing models.User
	err := r.DB.WithContext(ctx).
		Where("username = ? OR phone = ?", u.Username, u.Phone).
		First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) UserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UsersByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).
		Where("role = ?", role).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) CountUsersByRole(ctx context.Context, role models.Role) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&total).Error
	return total, err
}
