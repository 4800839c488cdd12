package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem is a single entry of the storefront navigation. Nesting is one
// level deep: top-level items have a nil ParentID, children reference a
// top-level item. Position orders an item among its siblings only; values are
// sparse (new items get max+10) and not required to be contiguous.
type MenuItem struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Link      string         `json:"link" gorm:"size:255;not null"` // internal path or external URL
	ParentID  *uint          `json:"parent_id" gorm:"index"`        // nil = top level
	Position  int            `json:"position" gorm:"default:0;index"`
	IsActive  bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name.
func (MenuItem) TableName() string {
	return "menu_items"
}

// SameParent reports whether two parent references point at the same sibling
// group. Comparison is by value: two nil parents match, two non-nil parents
// match when the referenced IDs are equal.
func SameParent(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// SiblingsOf filters items down to the sibling group of parentID, preserving
// the order of the input slice. Callers pass items already sorted by
// position (ties keep insertion order), so the result is the sibling group in
// display order.
func SiblingsOf(items []MenuItem, parentID *uint) []MenuItem {
	var siblings []MenuItem
	for _, it := range items {
		if SameParent(it.ParentID, parentID) {
			siblings = append(siblings, it)
		}
	}
	return siblings
}

// SiblingIndex returns the index of id within siblings, or -1.
func SiblingIndex(siblings []MenuItem, id uint) int {
	for i, it := range siblings {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// NextPosition computes the position for a newly created item: the current
// maximum position across all items plus 10. The gap leaves room for manual
// reinsertion without renumbering.
func NextPosition(items []MenuItem) int {
	max := 0
	for _, it := range items {
		if it.Position > max {
			max = it.Position
		}
	}
	return max + 10
}
