package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products by type (shoulder bag, tote, wallet...).
type Category struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug        string         `json:"slug" gorm:"size:100;not null;uniqueIndex"`
	Description string         `json:"description" gorm:"size:500"`
	Image       string         `json:"image" gorm:"size:255"`
	SortOrder   int            `json:"sort_order" gorm:"default:0;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}
