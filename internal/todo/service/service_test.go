package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"checklist/internal/todo/models"
	"checklist/internal/todo/store/memory"
	"checklist/pkg/domain"
	dErrors "checklist/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	svc *Service
	ctx context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.svc = New(memory.New(), nil, nil)
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestCreateList() {
	s.Run("trims the name", func() {
		list, err := s.svc.CreateList(s.ctx, "  groceries  ")
		s.Require().NoError(err)
		s.Equal("groceries", list.Name)
	})

	s.Run("rejects empty names", func() {
		_, err := s.svc.CreateList(s.ctx, "   ")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestNotFoundTranslation() {
	unknown := domain.NewListID()

	_, err := s.svc.GetList(s.ctx, unknown)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.svc.RenameList(s.ctx, unknown, "name")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.svc.DeleteList(s.ctx, unknown)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.svc.CreateItem(s.ctx, unknown, "milk")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.svc.DeleteItem(s.ctx, unknown, domain.NewItemID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.svc.SetCheckedState(s.ctx, unknown, domain.NewItemID(), true)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdateItemValidation() {
	list, err := s.svc.CreateList(s.ctx, "groceries")
	s.Require().NoError(err)
	item, err := s.svc.CreateItem(s.ctx, list.ID, "milk")
	s.Require().NoError(err)

	s.Run("empty patch is rejected", func() {
		_, err := s.svc.UpdateItem(s.ctx, list.ID, item.ID, models.ItemPatch{})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("blank label is rejected", func() {
		blank := "   "
		_, err := s.svc.UpdateItem(s.ctx, list.ID, item.ID, models.ItemPatch{Label: &blank})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("label is trimmed on update", func() {
		label := "  oat milk  "
		updated, err := s.svc.UpdateItem(s.ctx, list.ID, item.ID, models.ItemPatch{Label: &label})
		s.Require().NoError(err)
		s.Equal("oat milk", updated.Label)
	})

	s.Run("checked-only update keeps the label", func() {
		checked := true
		updated, err := s.svc.UpdateItem(s.ctx, list.ID, item.ID, models.ItemPatch{Checked: &checked})
		s.Require().NoError(err)
		s.True(updated.Checked)
		s.Equal("oat milk", updated.Label)
	})
}

func (s *ServiceSuite) TestCreateItemValidation() {
	list, err := s.svc.CreateList(s.ctx, "groceries")
	s.Require().NoError(err)

	_, err = s.svc.CreateItem(s.ctx, list.ID, "  ")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *ServiceSuite) TestDeleteCascade() {
	list, err := s.svc.CreateList(s.ctx, "doomed")
	s.Require().NoError(err)
	item, err := s.svc.CreateItem(s.ctx, list.ID, "orphan candidate")
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteList(s.ctx, list.ID))

	_, err = s.svc.SetCheckedState(s.ctx, list.ID, item.ID, true)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
