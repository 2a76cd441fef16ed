//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"checklist/internal/todo/models"
	"checklist/internal/todo/store/postgres"
	"checklist/pkg/domain"
	"checklist/pkg/platform/sentinel"
	"checklist/pkg/requestcontext"
	"checklist/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())

	store, err := postgres.New(context.Background(), s.postgres.DB, nil)
	s.Require().NoError(err)
	s.store = store
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "todo_lists"))
}

func (s *PostgresStoreSuite) TestListRoundTrip() {
	ctx := context.Background()

	created, err := s.store.CreateList(ctx, "groceries")
	s.Require().NoError(err)

	got, err := s.store.GetList(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("groceries", got.Name)
	s.Empty(got.Items)
	s.WithinDuration(created.CreatedAt, got.CreatedAt, time.Millisecond)
	s.True(got.CreatedAt.Equal(got.UpdatedAt))
}

func (s *PostgresStoreSuite) TestListListsOrdersByName() {
	ctx := context.Background()

	_, err := s.store.CreateList(ctx, "zebra")
	s.Require().NoError(err)
	_, err = s.store.CreateList(ctx, "apple")
	s.Require().NoError(err)

	summaries, err := s.store.ListLists(ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal("apple", summaries[0].Name)
	s.Equal("zebra", summaries[1].Name)
}

func (s *PostgresStoreSuite) TestRename() {
	ctx := context.Background()

	created, err := s.store.CreateList(requestcontext.WithTime(ctx, time.Now().Add(-time.Hour)), "old")
	s.Require().NoError(err)

	renamed, err := s.store.RenameList(ctx, created.ID, "new")
	s.Require().NoError(err)
	s.Equal("new", renamed.Name)
	s.True(renamed.UpdatedAt.After(renamed.CreatedAt))

	_, err = s.store.RenameList(ctx, domain.NewListID(), "ghost")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeleteCascades() {
	ctx := context.Background()

	list, err := s.store.CreateList(ctx, "doomed")
	s.Require().NoError(err)
	item, err := s.store.CreateItem(ctx, list.ID, "orphan candidate")
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteList(ctx, list.ID))

	_, err = s.store.GetList(ctx, list.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	s.Require().ErrorIs(s.store.DeleteItem(ctx, list.ID, item.ID), sentinel.ErrNotFound)
	s.Require().ErrorIs(s.store.DeleteList(ctx, list.ID), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestItemLifecycle() {
	ctx := context.Background()

	list, err := s.store.CreateList(requestcontext.WithTime(ctx, time.Now().Add(-time.Hour)), "groceries")
	s.Require().NoError(err)

	item, err := s.store.CreateItem(ctx, list.ID, "milk")
	s.Require().NoError(err)
	s.False(item.Checked)

	got, err := s.store.GetList(ctx, list.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Items, 1)
	s.Equal(item.ID, got.Items[0].ID)
	s.Equal("milk", got.Items[0].Label)
	s.True(got.UpdatedAt.After(got.CreatedAt), "item add should touch the list")

	s.Require().NoError(s.store.DeleteItem(ctx, list.ID, item.ID))
	got, err = s.store.GetList(ctx, list.ID)
	s.Require().NoError(err)
	s.Empty(got.Items)

	s.Require().ErrorIs(s.store.DeleteItem(ctx, list.ID, item.ID), sentinel.ErrNotFound)

	_, err = s.store.CreateItem(ctx, domain.NewListID(), "milk")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestPartialUpdate() {
	ctx := context.Background()

	list, err := s.store.CreateList(ctx, "groceries")
	s.Require().NoError(err)
	item, err := s.store.CreateItem(ctx, list.ID, "milk")
	s.Require().NoError(err)
	other, err := s.store.CreateItem(ctx, list.ID, "bread")
	s.Require().NoError(err)

	listBefore, err := s.store.GetList(ctx, list.ID)
	s.Require().NoError(err)

	checked := true
	updated, err := s.store.UpdateItem(ctx, list.ID, item.ID, models.ItemPatch{Checked: &checked})
	s.Require().NoError(err)
	s.True(updated.Checked)
	s.Equal("milk", updated.Label, "checked-only patch must not touch the label")

	label := "oat milk"
	updated, err = s.store.UpdateItem(ctx, list.ID, item.ID, models.ItemPatch{Label: &label})
	s.Require().NoError(err)
	s.Equal("oat milk", updated.Label)
	s.True(updated.Checked, "label-only patch must not touch the checked state")

	listAfter, err := s.store.GetList(ctx, list.ID)
	s.Require().NoError(err)
	s.True(listAfter.UpdatedAt.Equal(listBefore.UpdatedAt), "item patch must not touch the list UpdatedAt")

	// untouched sibling stays intact
	sibling := listAfter.FindItem(other.ID)
	s.Require().NotNil(sibling)
	s.Equal("bread", sibling.Label)
	s.False(sibling.Checked)

	_, err = s.store.UpdateItem(ctx, list.ID, domain.NewItemID(), models.ItemPatch{Checked: &checked})
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
