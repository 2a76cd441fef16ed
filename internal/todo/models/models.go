// Package models defines the to-do list aggregate and its projections.
package models

import (
	"time"

	"checklist/pkg/domain"
)

// TodoList is the aggregate root. A list exclusively owns its items; an item
// has no identity outside its parent and is destroyed with it.
//
// Invariants:
//   - UpdatedAt moves whenever the name changes or an item is added/removed
//   - UpdatedAt does NOT move when only an item's own fields change
//   - CreatedAt is immutable after construction
type TodoList struct {
	ID        domain.ListID `json:"id"`
	Name      string        `json:"name"`
	Items     []Item        `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Item is a labeled, checkable unit of work inside exactly one list.
// Its UpdatedAt moves only when its own label or checked state changes.
type Item struct {
	ID        domain.ItemID `json:"id"`
	Label     string        `json:"label"`
	Checked   bool          `json:"checked"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ListSummary is the collection-level projection of a list: everything but
// the items themselves, with their count instead.
type ListSummary struct {
	ID        domain.ListID `json:"id"`
	Name      string        `json:"name"`
	ItemCount int           `json:"item_count"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Summary projects the full aggregate down to its summary shape.
func (l *TodoList) Summary() ListSummary {
	return ListSummary{
		ID:        l.ID,
		Name:      l.Name,
		ItemCount: len(l.Items),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// FindItem returns a pointer into the list's item slice, or nil if the item
// is not present. Callers mutate through the pointer while holding whatever
// lock guards the aggregate.
func (l *TodoList) FindItem(itemID domain.ItemID) *Item {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i]
		}
	}
	return nil
}

// NewTodoList constructs an empty list with both timestamps at now.
func NewTodoList(id domain.ListID, name string, now time.Time) *TodoList {
	return &TodoList{
		ID:        id,
		Name:      name,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewItem constructs an unchecked item with both timestamps at now.
func NewItem(id domain.ItemID, label string, now time.Time) Item {
	return Item{
		ID:        id,
		Label:     label,
		Checked:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ItemPatch carries a partial item update. Pointer fields distinguish
// "absent, leave unchanged" from an explicit new value, per the update
// contract: only present fields are applied.
type ItemPatch struct {
	Label   *string
	Checked *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Label == nil && p.Checked == nil
}

// Apply mutates item with the present fields and stamps its UpdatedAt.
func (p ItemPatch) Apply(item *Item, now time.Time) {
	if p.Label != nil {
		item.Label = *p.Label
	}
	if p.Checked != nil {
		item.Checked = *p.Checked
	}
	item.UpdatedAt = now
}
