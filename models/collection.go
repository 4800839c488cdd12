package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection is a curated, seasonal product grouping shown on the storefront
// (e.g. "Yaz 2026"). A product belongs to at most one collection.
type Collection struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug        string         `json:"slug" gorm:"size:100;not null;uniqueIndex"`
	Description string         `json:"description" gorm:"size:500"`
	Image       string         `json:"image" gorm:"size:255"`
	IsActive    bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Collection) TableName() string {
	return "collections"
}
