package models

import (
	"time"
)

// PageContent stores one editable field of a content page as raw HTML. Pages
// are addressed by key (about, contact, ...); which fields a page has is
// decided by the static dispatch table below, not by the database.
type PageContent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PageKey   string    `json:"page_key" gorm:"size:50;not null;uniqueIndex:idx_page_field"`
	FieldKey  string    `json:"field_key" gorm:"size:50;not null;uniqueIndex:idx_page_field"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (PageContent) TableName() string {
	return "page_contents"
}

// PageField is one named slot of a content page, with its Turkish admin label.
type PageField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PageFields maps a page key to the ordered field shape of that page. Unknown
// keys fall back to a single free-form content field. The renderer substitutes
// each present field's HTML into a fixed layout; absent fields are omitted.
func PageFields(pageKey string) []PageField {
	switch pageKey {
	case "about":
		return []PageField{
			{Key: "intro", Label: "Giriş"},
			{Key: "mission", Label: "Misyonumuz"},
			{Key: "vision", Label: "Vizyonumuz"},
			{Key: "story", Label: "Hikayemiz"},
			{Key: "team", Label: "Ekibimiz"},
		}
	case "contact":
		return []PageField{
			{Key: "info", Label: "İletişim Bilgisi"},
			{Key: "address", Label: "Adres"},
			{Key: "phone", Label: "Telefon"},
			{Key: "email", Label: "E-posta"},
			{Key: "map", Label: "Harita"},
			{Key: "hours", Label: "Çalışma Saatleri"},
		}
	default:
		return []PageField{
			{Key: "content", Label: "İçerik"},
		}
	}
}

// HasPageField reports whether fieldKey belongs to the shape of pageKey.
func HasPageField(pageKey, fieldKey string) bool {
	for _, f := range PageFields(pageKey) {
		if f.Key == fieldKey {
			return true
		}
	}
	return false
}
