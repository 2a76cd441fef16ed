// Package postgres implements the to-do store on PostgreSQL.
//
// Each list is one row with its items embedded in a jsonb column, so every
// mutation is a single atomic UPDATE against one row: concurrent writes to
// different lists never interfere, and writes to the same list serialize on
// the row lock.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"checklist/internal/platform/metrics"
	"checklist/internal/todo/models"
	"checklist/pkg/domain"
	"checklist/pkg/platform/sentinel"
	"checklist/pkg/requestcontext"
)

const schema = `
CREATE TABLE IF NOT EXISTS todo_lists (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	items      JSONB NOT NULL DEFAULT '[]'::jsonb,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS todo_lists_name_idx ON todo_lists (name);
`

// Store is the PostgreSQL-backed storage adapter.
type Store struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// New constructs a Store and ensures the schema exists.
func New(ctx context.Context, db *sql.DB, m *metrics.Metrics) (*Store, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db, metrics: m}, nil
}

func (s *Store) ListLists(ctx context.Context) ([]models.ListSummary, error) {
	defer s.observe("list_lists", time.Now())

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, jsonb_array_length(items), created_at, updated_at
		FROM todo_lists
		ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	summaries := []models.ListSummary{}
	for rows.Next() {
		var (
			id      uuid.UUID
			summary models.ListSummary
		)
		if err := rows.Scan(&id, &summary.Name, &summary.ItemCount, &summary.CreatedAt, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan list summary: %w", err)
		}
		summary.ID = domain.ListID(id)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list summaries: %w", err)
	}
	return summaries, nil
}

func (s *Store) CreateList(ctx context.Context, name string) (*models.TodoList, error) {
	defer s.observe("create_list", time.Now())

	list := models.NewTodoList(domain.NewListID(), name, requestcontext.Now(ctx))
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todo_lists (id, name, items, created_at, updated_at)
		VALUES ($1, $2, '[]'::jsonb, $3, $4)`,
		uuid.UUID(list.ID), list.Name, list.CreatedAt, list.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

func (s *Store) GetList(ctx context.Context, id domain.ListID) (*models.TodoList, error) {
	defer s.observe("get_list", time.Now())

	var (
		list     models.TodoList
		rawItems []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT name, items, created_at, updated_at
		FROM todo_lists
		WHERE id = $1`, uuid.UUID(id)).
		Scan(&list.Name, &rawItems, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get list: %w", err)
	}
	if err := json.Unmarshal(rawItems, &list.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	list.ID = id
	return &list, nil
}

func (s *Store) RenameList(ctx context.Context, id domain.ListID, name string) (*models.TodoList, error) {
	defer s.observe("rename_list", time.Now())

	var (
		list     models.TodoList
		rawItems []byte
	)
	err := s.db.QueryRowContext(ctx, `
		UPDATE todo_lists
		SET name = $2, updated_at = $3
		WHERE id = $1
		RETURNING items, created_at, updated_at`,
		uuid.UUID(id), name, requestcontext.Now(ctx)).
		Scan(&rawItems, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("rename list: %w", err)
	}
	if err := json.Unmarshal(rawItems, &list.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	list.ID = id
	list.Name = name
	return &list, nil
}

func (s *Store) DeleteList(ctx context.Context, id domain.ListID) error {
	defer s.observe("delete_list", time.Now())

	res, err := s.db.ExecContext(ctx, `DELETE FROM todo_lists WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return requireRow(res)
}

func (s *Store) CreateItem(ctx context.Context, listID domain.ListID, label string) (*models.Item, error) {
	defer s.observe("create_item", time.Now())

	now := requestcontext.Now(ctx)
	item := models.NewItem(domain.NewItemID(), label, now)
	payload, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode item: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE todo_lists
		SET items = items || jsonb_build_array($2::jsonb), updated_at = $3
		WHERE id = $1`,
		uuid.UUID(listID), string(payload), now)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID) error {
	defer s.observe("delete_item", time.Now())

	// The @> guard makes "item absent" fail the same way as "list absent":
	// zero rows updated.
	res, err := s.db.ExecContext(ctx, `
		UPDATE todo_lists
		SET items = (
			SELECT COALESCE(jsonb_agg(item), '[]'::jsonb)
			FROM jsonb_array_elements(items) AS item
			WHERE item->>'id' <> $2
		), updated_at = $3
		WHERE id = $1
		  AND items @> jsonb_build_array(jsonb_build_object('id', $2::text))`,
		uuid.UUID(listID), itemID.String(), requestcontext.Now(ctx))
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return requireRow(res)
}

func (s *Store) UpdateItem(ctx context.Context, listID domain.ListID, itemID domain.ItemID, patch models.ItemPatch) (*models.Item, error) {
	defer s.observe("update_item", time.Now())

	// Only the patched fields plus the item's own updated_at are merged into
	// the element; the list row's updated_at stays put.
	fields := map[string]any{"updated_at": requestcontext.Now(ctx)}
	if patch.Label != nil {
		fields["label"] = *patch.Label
	}
	if patch.Checked != nil {
		fields["checked"] = *patch.Checked
	}
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode patch: %w", err)
	}

	var rawItems []byte
	err = s.db.QueryRowContext(ctx, `
		UPDATE todo_lists
		SET items = (
			SELECT jsonb_agg(CASE WHEN item->>'id' = $2 THEN item || $3::jsonb ELSE item END)
			FROM jsonb_array_elements(items) AS item
		)
		WHERE id = $1
		  AND items @> jsonb_build_array(jsonb_build_object('id', $2::text))
		RETURNING items`,
		uuid.UUID(listID), itemID.String(), string(payload)).
		Scan(&rawItems)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("update item: updated item missing from row")
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) observe(op string, start time.Time) {
	s.metrics.ObserveStoreOperation(op, time.Since(start))
}

// requireRow maps "zero rows touched" onto the not-found sentinel.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
