package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Order statuses. Checkout creates orders as pending; the admin console moves
// them forward (or cancels).
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// PaymentCashOnDelivery is the only supported payment method (kapıda ödeme).
const PaymentCashOnDelivery = "cash_on_delivery"

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer order placed at checkout.
type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderNo       string         `json:"order_no" gorm:"size:32;not null;uniqueIndex"`
	UserID        *uint          `json:"user_id" gorm:"index"` // nil for guest checkout
	CustomerName  string         `json:"customer_name" gorm:"size:100;not null"`
	Phone         string         `json:"phone" gorm:"size:30;not null;index"`
	Email         string         `json:"email" gorm:"size:100"`
	Address       string         `json:"address" gorm:"size:500;not null"`
	City          string         `json:"city" gorm:"size:50"`
	Note          string         `json:"note" gorm:"size:500"`
	Status        string         `json:"status" gorm:"size:20;default:pending;index"`
	PaymentMethod string         `json:"payment_method" gorm:"size:30;default:cash_on_delivery"`
	ItemsTotal    float64        `json:"items_total"`
	ShippingFee   float64        `json:"shipping_fee"`
	Total         float64        `json:"total"`
	Items         []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line of an order. Name, price and image are copied from the
// product at checkout time so later catalog edits do not rewrite history.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"index;not null"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:150;not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Image     string    `json:"image" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderNotification is an unread-badge entry for the admin console, written
// when a new order arrives.
type OrderNotification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"size:255;not null"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (OrderNotification) TableName() string {
	return "order_notifications"
}

// GenerateOrderNo builds an order number like AT20260829-3F7A1C.
func GenerateOrderNo() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("AT%s-%s", time.Now().Format("20060102"), strings.ToUpper(hex.EncodeToString(b))), nil
}
