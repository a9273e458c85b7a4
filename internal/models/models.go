package models

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	Phone        string `gorm:"unique;not null"          json:"phone"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         Role   `gorm:"not null"                 json:"role"`
}

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint        `gorm:"index;not null"           json:"user_id"`
	CreatedAt time.Time   `gorm:"not null"                 json:"created_at"`
	Status    bool        `gorm:"not null;default:false"   json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"       json:"items"`
}

type OrderItem struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	OrderID  uint   `gorm:"index;not null"            json:"order_id"`
	Category string `gorm:"not null"                  json:"category"`
	Color    string `gorm:"not null"                  json:"color"`
	Quantity uint   `gorm:"not null;check:quantity>0" json:"quantity"`
}
