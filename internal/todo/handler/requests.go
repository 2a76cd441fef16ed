package handler

// CreateListRequest is the body of POST /api/lists.
type CreateListRequest struct {
	Name string `json:"name"`
}

// RenameListRequest is the body of PUT /api/lists/{listID}.
type RenameListRequest struct {
	Name string `json:"name"`
}

// CreateItemRequest is the body of POST /api/lists/{listID}/items.
type CreateItemRequest struct {
	Label string `json:"label"`
}

// UpdateItemRequest is the body of PATCH /api/lists/{listID}/items/{itemID}.
// Pointer fields distinguish an omitted field from an explicit value, so a
// checked-only patch leaves the label alone and vice versa.
type UpdateItemRequest struct {
	Label   *string `json:"label"`
	Checked *bool   `json:"checked"`
}

// SetCheckedStateRequest is the body of
// PATCH /api/lists/{listID}/items/{itemID}/checked_state.
type SetCheckedStateRequest struct {
	CheckedState *bool `json:"checked_state"`
}
