package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestSameParent(t *testing.T) {
	assert.True(t, SameParent(nil, nil))
	assert.True(t, SameParent(uintPtr(3), uintPtr(3)))
	assert.False(t, SameParent(nil, uintPtr(3)))
	assert.False(t, SameParent(uintPtr(3), nil))
	assert.False(t, SameParent(uintPtr(3), uintPtr(4)))

	// Equality is by value, not by pointer identity.
	a, b := uintPtr(7), uintPtr(7)
	assert.True(t, SameParent(a, b))
}

func TestSiblingsOf(t *testing.T) {
	items := []MenuItem{
		{ID: 1, Name: "Anasayfa", Position: 10},
		{ID: 3, Name: "Deri Çantalar", ParentID: uintPtr(2), Position: 15},
		{ID: 2, Name: "Ürünler", Position: 20},
		{ID: 4, Name: "Bez Çantalar", ParentID: uintPtr(2), Position: 25},
		{ID: 5, Name: "İletişim", Position: 30},
	}

	top := SiblingsOf(items, nil)
	require.Len(t, top, 3)
	assert.Equal(t, uint(1), top[0].ID)
	assert.Equal(t, uint(2), top[1].ID)
	assert.Equal(t, uint(5), top[2].ID)

	children := SiblingsOf(items, uintPtr(2))
	require.Len(t, children, 2)
	assert.Equal(t, uint(3), children[0].ID)
	assert.Equal(t, uint(4), children[1].ID)

	assert.Empty(t, SiblingsOf(items, uintPtr(99)))
}

func TestSiblingIndex(t *testing.T) {
	siblings := []MenuItem{{ID: 10}, {ID: 20}, {ID: 30}}
	assert.Equal(t, 0, SiblingIndex(siblings, 10))
	assert.Equal(t, 2, SiblingIndex(siblings, 30))
	assert.Equal(t, -1, SiblingIndex(siblings, 99))
	assert.Equal(t, -1, SiblingIndex(nil, 10))
}

func TestNextPosition(t *testing.T) {
	assert.Equal(t, 10, NextPosition(nil))
	assert.Equal(t, 10, NextPosition([]MenuItem{}))

	items := []MenuItem{
		{ID: 1, Position: 10},
		{ID: 2, Position: 40},
		{ID: 3, Position: 20},
	}
	// Maximum across the whole collection, children included.
	items = append(items, MenuItem{ID: 4, ParentID: uintPtr(1), Position: 70})
	assert.Equal(t, 80, NextPosition(items))
}

// Swapping two neighbors' positions and sorting again must restore the
// original order when done twice, and never disturb other sibling groups.
func TestPositionSwapRoundTrip(t *testing.T) {
	items := []MenuItem{
		{ID: 1, Name: "A", Position: 10},
		{ID: 2, Name: "B", Position: 20},
		{ID: 3, Name: "C", Position: 30},
		{ID: 4, Name: "A1", ParentID: uintPtr(1), Position: 10},
	}

	swap := func(items []MenuItem, id uint, dir int) []MenuItem {
		siblings := SiblingsOf(items, items[indexOf(items, id)].ParentID)
		idx := SiblingIndex(siblings, id)
		other := idx + dir
		if idx < 0 || other < 0 || other >= len(siblings) {
			return items
		}
		aID, bID := siblings[idx].ID, siblings[other].ID
		out := make([]MenuItem, len(items))
		copy(out, items)
		out[indexOf(out, aID)].Position, out[indexOf(out, bID)].Position =
			items[indexOf(items, bID)].Position, items[indexOf(items, aID)].Position
		sortByPosition(out)
		return out
	}

	moved := swap(items, 2, -1) // B above A
	top := SiblingsOf(moved, nil)
	assert.Equal(t, []uint{2, 1, 3}, idsOf(top))

	restored := swap(moved, 2, +1) // and back down
	assert.Equal(t, []uint{1, 2, 3}, idsOf(SiblingsOf(restored, nil)))

	// Boundary moves change nothing.
	same := swap(items, 1, -1)
	assert.Equal(t, idsOf(SiblingsOf(items, nil)), idsOf(SiblingsOf(same, nil)))
	same = swap(items, 3, +1)
	assert.Equal(t, idsOf(SiblingsOf(items, nil)), idsOf(SiblingsOf(same, nil)))

	// The child group never moved.
	assert.Equal(t, []uint{4}, idsOf(SiblingsOf(moved, uintPtr(1))))
}

// Moving the last of three items up swaps it with the middle one and leaves
// the first untouched.
func TestMoveUpSwapsAdjacentPair(t *testing.T) {
	a := MenuItem{ID: 1, Name: "A", Position: 10}
	b := MenuItem{ID: 2, Name: "B", Position: 20}
	c := MenuItem{ID: 3, Name: "C", Position: 30}
	items := []MenuItem{a, b, c}

	siblings := SiblingsOf(items, nil)
	idx := SiblingIndex(siblings, c.ID)
	require.Equal(t, 2, idx)
	neighbor := siblings[idx-1]

	items[2].Position, items[1].Position = neighbor.Position, c.Position
	sortByPosition(items)

	assert.Equal(t, []uint{1, 3, 2}, idsOf(items))
	assert.Equal(t, 10, items[0].Position)
	assert.Equal(t, 20, items[1].Position)
	assert.Equal(t, 30, items[2].Position)
}

func indexOf(items []MenuItem, id uint) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func sortByPosition(items []MenuItem) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0; j-- {
			a, b := items[j-1], items[j]
			if a.Position < b.Position || (a.Position == b.Position && a.ID < b.ID) {
				break
			}
			items[j-1], items[j] = b, a
		}
	}
}

func idsOf(items []MenuItem) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
