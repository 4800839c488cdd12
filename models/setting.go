package models

import (
	"time"
)

// Setting is one key/value row of the store configuration maintained from the
// admin console (store name, contact details, shipping fee...).
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"size:50;not null;uniqueIndex"`
	Value     string    `json:"value" gorm:"size:1000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Setting) TableName() string {
	return "settings"
}

// Setting keys used by checkout and the storefront.
const (
	SettingStoreName         = "store_name"
	SettingPhone             = "phone"
	SettingEmail             = "email"
	SettingAddress           = "address"
	SettingInstagram         = "instagram"
	SettingWhatsapp          = "whatsapp"
	SettingShippingFee       = "shipping_fee"
	SettingFreeShippingLimit = "free_shipping_limit"
)

// PublicSettingKeys lists the settings the storefront may read without auth.
var PublicSettingKeys = []string{
	SettingStoreName,
	SettingPhone,
	SettingEmail,
	SettingAddress,
	SettingInstagram,
	SettingWhatsapp,
	SettingShippingFee,
	SettingFreeShippingLimit,
}

// IsPublicSetting reports whether key is exposed to the storefront.
func IsPublicSetting(key string) bool {
	for _, k := range PublicSettingKeys {
		if k == key {
			return true
		}
	}
	return false
}
