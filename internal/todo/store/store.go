// Package store defines the storage adapter contract for to-do lists.
//
// Implementations generate identifiers and timestamps themselves so the
// create operations stay atomic against the backing store. Absent entities
// surface as sentinel.ErrNotFound (optionally wrapped); the service layer
// translates that into domain errors.
package store

import (
	"context"

	"checklist/internal/todo/models"
	"checklist/pkg/domain"
)

// Store is the storage adapter over lists and their embedded items.
type Store interface {
	// ListLists returns summaries of every list. The PostgreSQL
	// implementation orders by name; the in-memory one preserves insertion
	// order.
	ListLists(ctx context.Context) ([]models.ListSummary, error)

	// CreateList stores a new empty list under a fresh ID with both
	// timestamps at the creation instant. Names are not validated here.
	CreateList(ctx context.Context, name string) (*models.TodoList, error)

	// GetList returns the full list with its items.
	GetList(ctx context.Context, id domain.ListID) (*models.TodoList, error)

	// RenameList changes the list name and touches its UpdatedAt.
	RenameList(ctx context.Context, id domain.ListID, name string) (*models.TodoList, error)

	// DeleteList removes the list and, with it, every item it owns.
	DeleteList(ctx context.Context, id domain.ListID) error

	// CreateItem appends a fresh unchecked item to the list and touches the
	// list's UpdatedAt.
	CreateItem(ctx context.Context, listID domain.ListID, label string) (*models.Item, error)

	// DeleteItem removes one item and touches the list's UpdatedAt.
	// ErrNotFound covers both an absent list and an absent item.
	DeleteItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID) error

	// UpdateItem applies the present patch fields and touches the item's
	// UpdatedAt. The list's own UpdatedAt is left alone.
	UpdateItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID, patch models.ItemPatch) (*models.Item, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
