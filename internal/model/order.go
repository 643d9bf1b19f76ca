package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order status values. Transitions are validated in the service layer.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a denormalized product line captured at order time.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is a customer order. UserID scopes ownership; items are stored as a
// JSON document since they are never queried individually.
type Order struct {
	ID        uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:char(36);not null;index"`
	Name      string      `json:"name" gorm:"size:255;not null"`
	Phone     string      `json:"phone" gorm:"size:50;not null"`
	Address   string      `json:"address" gorm:"size:512;not null"`
	Items     []OrderItem `json:"items" gorm:"serializer:json"`
	Status    string      `json:"status" gorm:"size:50;not null;default:'pending';index"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
