package models

import (
	"time"
)

// Favorite marks a product as liked by a customer. One row per (user, product).
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_user_product"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
