// Package service orchestrates to-do operations between transport and store.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"checklist/internal/platform/metrics"
	"checklist/internal/todo/models"
	"checklist/internal/todo/store"
	"checklist/pkg/domain"
	dErrors "checklist/pkg/domain-errors"
	"checklist/pkg/platform/sentinel"
)

// Service validates input, delegates to the storage adapter, and translates
// store sentinels into coded domain errors.
type Service struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a Service. Logger and metrics may be nil-valued in tests; the
// metrics methods are nil-safe and the logger defaults to slog's.
func New(st store.Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger, metrics: m}
}

// ListLists returns summaries of every list.
func (s *Service) ListLists(ctx context.Context) ([]models.ListSummary, error) {
	summaries, err := s.store.ListLists(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list lists")
	}
	return summaries, nil
}

// CreateList creates an empty list with the given name.
func (s *Service) CreateList(ctx context.Context, name string) (*models.TodoList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "list name is required")
	}

	list, err := s.store.CreateList(ctx, name)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create list")
	}

	s.metrics.IncrementListsCreated()
	s.logger.InfoContext(ctx, "list created", "list_id", list.ID.String())
	return list, nil
}

// GetList returns the full list with its items.
func (s *Service) GetList(ctx context.Context, id domain.ListID) (*models.TodoList, error) {
	list, err := s.store.GetList(ctx, id)
	if err != nil {
		return nil, wrapListErr(err)
	}
	return list, nil
}

// RenameList changes a list's name.
func (s *Service) RenameList(ctx context.Context, id domain.ListID, name string) (*models.TodoList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "list name is required")
	}

	list, err := s.store.RenameList(ctx, id, name)
	if err != nil {
		return nil, wrapListErr(err)
	}
	return list, nil
}

// DeleteList removes a list and every item it owns.
// Deleting an absent list is a not-found error, not a silent no-op.
func (s *Service) DeleteList(ctx context.Context, id domain.ListID) error {
	if err := s.store.DeleteList(ctx, id); err != nil {
		return wrapListErr(err)
	}
	s.logger.InfoContext(ctx, "list deleted", "list_id", id.String())
	return nil
}

// CreateItem appends a new unchecked item to an existing list.
func (s *Service) CreateItem(ctx context.Context, listID domain.ListID, label string) (*models.Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "item label is required")
	}

	item, err := s.store.CreateItem(ctx, listID, label)
	if err != nil {
		return nil, wrapListErr(err)
	}

	s.metrics.IncrementItemsCreated()
	s.logger.InfoContext(ctx, "item created", "list_id", listID.String(), "item_id", item.ID.String())
	return item, nil
}

// DeleteItem removes one item from a list.
func (s *Service) DeleteItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID) error {
	if err := s.store.DeleteItem(ctx, listID, itemID); err != nil {
		return wrapItemErr(err)
	}
	return nil
}

// UpdateItem applies a partial update to one item. A patch with a label must
// not blank it; an entirely empty patch is rejected rather than silently
// bumping the item's timestamp.
func (s *Service) UpdateItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID, patch models.ItemPatch) (*models.Item, error) {
	if patch.IsEmpty() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "update requires at least one of label or checked")
	}
	if patch.Label != nil {
		trimmed := strings.TrimSpace(*patch.Label)
		if trimmed == "" {
			return nil, dErrors.New(dErrors.CodeBadRequest, "item label must not be empty")
		}
		patch.Label = &trimmed
	}

	item, err := s.store.UpdateItem(ctx, listID, itemID, patch)
	if err != nil {
		return nil, wrapItemErr(err)
	}
	return item, nil
}

// SetCheckedState toggles just the checked flag of one item.
func (s *Service) SetCheckedState(ctx context.Context, listID domain.ListID, itemID domain.ItemID, checked bool) (*models.Item, error) {
	return s.UpdateItem(ctx, listID, itemID, models.ItemPatch{Checked: &checked})
}

// Ping reports backing store reachability for health checks.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func wrapListErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "list does not exist")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "store operation failed")
}

func wrapItemErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "list or item does not exist")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "store operation failed")
}
