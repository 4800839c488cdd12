package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a handmade bag in the catalog.
type Product struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:150;not null"`
	Slug         string         `json:"slug" gorm:"size:150;not null;uniqueIndex"`
	Description  string         `json:"description" gorm:"type:text"` // admin-supplied HTML
	Price        float64        `json:"price" gorm:"not null"`
	Stock        int            `json:"stock" gorm:"default:0"`
	Image        string         `json:"image" gorm:"size:255"`
	IsActive     bool           `json:"is_active" gorm:"default:true;index"`
	CategoryID   *uint          `json:"category_id" gorm:"index"`
	CollectionID *uint          `json:"collection_id" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
