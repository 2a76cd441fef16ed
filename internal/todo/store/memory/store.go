// Package memory implements the to-do store as an in-process map.
//
// There is no cross-request coordination beyond the mutex: two concurrent
// updates to the same list serialize on the lock and the last write wins.
// That matches the accepted single-process scope of this store.
package memory

import (
	"context"
	"sync"

	"checklist/internal/todo/models"
	"checklist/pkg/domain"
	"checklist/pkg/platform/sentinel"
	"checklist/pkg/requestcontext"
)

// Store keeps every list in a map keyed by list ID, with a separate slice
// preserving insertion order for ListLists.
type Store struct {
	mu    sync.RWMutex
	lists map[domain.ListID]*models.TodoList
	order []domain.ListID
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{lists: make(map[domain.ListID]*models.TodoList)}
}

func (s *Store) ListLists(_ context.Context) ([]models.ListSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.ListSummary, 0, len(s.order))
	for _, id := range s.order {
		summaries = append(summaries, s.lists[id].Summary())
	}
	return summaries, nil
}

func (s *Store) CreateList(ctx context.Context, name string) (*models.TodoList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := models.NewTodoList(domain.NewListID(), name, requestcontext.Now(ctx))
	s.lists[list.ID] = list
	s.order = append(s.order, list.ID)
	return copyList(list), nil
}

func (s *Store) GetList(_ context.Context, id domain.ListID) (*models.TodoList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyList(list), nil
}

func (s *Store) RenameList(ctx context.Context, id domain.ListID, name string) (*models.TodoList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	list.Name = name
	list.UpdatedAt = requestcontext.Now(ctx)
	return copyList(list), nil
}

func (s *Store) DeleteList(_ context.Context, id domain.ListID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.lists, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) CreateItem(ctx context.Context, listID domain.ListID, label string) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[listID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}

	now := requestcontext.Now(ctx)
	item := models.NewItem(domain.NewItemID(), label, now)
	list.Items = append(list.Items, item)
	list.UpdatedAt = now
	return &item, nil
}

func (s *Store) DeleteItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[listID]
	if !ok {
		return sentinel.ErrNotFound
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			list.UpdatedAt = requestcontext.Now(ctx)
			return nil
		}
	}
	return sentinel.ErrNotFound
}

func (s *Store) UpdateItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID, patch models.ItemPatch) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[listID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	item := list.FindItem(itemID)
	if item == nil {
		return nil, sentinel.ErrNotFound
	}

	patch.Apply(item, requestcontext.Now(ctx))
	updated := *item
	return &updated, nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

// copyList returns a deep copy so callers never hold a pointer into the
// store's own state.
func copyList(list *models.TodoList) *models.TodoList {
	out := *list
	out.Items = append([]models.Item{}, list.Items...)
	return &out
}
