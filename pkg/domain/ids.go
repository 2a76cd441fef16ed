// Package domain defines typed identifiers shared across layers.
//
// IDs are distinct named UUID types so the compiler rejects passing an item
// ID where a list ID is expected. Construct them via the Parse functions at
// trust boundaries; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "checklist/pkg/domain-errors"
)

// ListID identifies a to-do list.
type ListID uuid.UUID

// ItemID identifies an item within its owning list. Item IDs are unique only
// inside one list, never globally.
type ItemID uuid.UUID

// NewListID generates a fresh random list ID.
func NewListID() ListID {
	return ListID(uuid.New())
}

// NewItemID generates a fresh random item ID.
func NewItemID() ItemID {
	return ItemID(uuid.New())
}

// ParseListID validates and returns a ListID.
// Rejects empty strings, malformed UUIDs, and the nil UUID.
func ParseListID(s string) (ListID, error) {
	u, err := parseUUID(s, "list id")
	if err != nil {
		return ListID{}, err
	}
	return ListID(u), nil
}

// ParseItemID validates and returns an ItemID.
// Rejects empty strings, malformed UUIDs, and the nil UUID.
func ParseItemID(s string) (ItemID, error) {
	u, err := parseUUID(s, "item id")
	if err != nil {
		return ItemID{}, err
	}
	return ItemID(u), nil
}

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "malformed "+kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" must not be nil")
	}
	return u, nil
}

func (id ListID) String() string { return uuid.UUID(id).String() }
func (id ItemID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id ListID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// IsNil reports whether the ID is the zero UUID.
func (id ItemID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID as its canonical UUID string for JSON keys and
// struct fields alike.
func (id ListID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical UUID string form.
func (id *ListID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = ListID(u)
	return nil
}

// MarshalText renders the ID as its canonical UUID string.
func (id ItemID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical UUID string form.
func (id *ItemID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = ItemID(u)
	return nil
}
