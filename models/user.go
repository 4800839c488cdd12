package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// UserStatusLocked blocks login.
	UserStatusLocked = "locked"
	// UserStatusActive allows login.
	UserStatusActive = "active"
)

// User covers both storefront customers and back-office admins; IsAdmin gates
// the admin console. Customers are active as soon as they register.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:100;index"`
	FullName  string         `json:"full_name" gorm:"size:100"`
	Phone     string         `json:"phone" gorm:"size:30"`
	IsAdmin   bool           `json:"is_admin" gorm:"default:false;index"`
	Status    string         `json:"status" gorm:"size:20;default:active;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
