package usecase

import (
	"context"
	"testing"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectUseCase_NotifyProgress(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testStore, *ProjectUseCase, entities.Project) {
		t.Helper()
		s := newTestStore(t)
		s.seedAdmin(t)
		conv, err := s.conversion().ConvertBudget(ctx, s.seedBudget(t, entities.BudgetStatusAccepted).ID)
		require.NoError(t, err)
		return s, NewProjectUseCase(s.projects, s.budgets, s.dispatch, zapNop()), conv.Project
	}

	t.Run("advances monotonically", func(t *testing.T) {
		s, uc, p := setup(t)
		sentBefore := s.mailer.count()

		res, err := uc.NotifyProgress(ctx, p.ID, 50, true)
		require.NoError(t, err)
		assert.False(t, res.Replayed)
		assert.Equal(t, entities.ProjectStatusDevelopment50, res.Project.Status)
		assert.Equal(t, 50, res.Project.Progress)
		assert.True(t, res.EmailSent)
		assert.Equal(t, sentBefore+1, s.mailer.count())

		res, err = uc.NotifyProgress(ctx, p.ID, 100, false)
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectStatusDevelopment100, res.Project.Status)
		assert.False(t, res.EmailSent)
		assert.Equal(t, sentBefore+1, s.mailer.count())
	})

	t.Run("same step is a no-op", func(t *testing.T) {
		s, uc, p := setup(t)
		_, err := uc.NotifyProgress(ctx, p.ID, 20, true)
		require.NoError(t, err)
		sent := s.mailer.count()

		res, err := uc.NotifyProgress(ctx, p.ID, 20, true)
		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, 20, res.Project.Progress)
		assert.Equal(t, sent, s.mailer.count())
	})

	t.Run("lower step is rejected", func(t *testing.T) {
		_, uc, p := setup(t)
		_, err := uc.NotifyProgress(ctx, p.ID, 70, false)
		require.NoError(t, err)

		_, err = uc.NotifyProgress(ctx, p.ID, 50, false)
		assert.ErrorIs(t, err, policy.ErrProgressRegression)

		stored, err := uc.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 70, stored.Progress)
	})

	t.Run("invalid step", func(t *testing.T) {
		_, uc, p := setup(t)
		_, err := uc.NotifyProgress(ctx, p.ID, 30, false)
		assert.ErrorIs(t, err, policy.ErrInvalidProgress)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, uc, _ := setup(t)
		_, err := uc.NotifyProgress(ctx, "missing", 20, false)
		assert.ErrorIs(t, err, ErrProjectNotFound)
		_, err = uc.GetByID(ctx, " ")
		assert.ErrorIs(t, err, ErrInvalidProjectID)
	})

	t.Run("list", func(t *testing.T) {
		_, uc, p := setup(t)
		list, err := uc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, p.ID, list[0].ID)
	})
}
