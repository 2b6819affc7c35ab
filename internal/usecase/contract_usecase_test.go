package usecase

import (
	"context"
	"testing"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("generate and sign", func(t *testing.T) {
		s := newTestStore(t)
		s.seedAdmin(t)
		b := s.seedBudget(t, entities.BudgetStatusAccepted)
		uc := NewContractUseCase(s.tx, s.contracts, s.budgets, s.dispatch, zapNop())

		gen, err := uc.Generate(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusSent, gen.Contract.Status)
		require.NotNil(t, gen.Contract.SentAt)
		assert.Contains(t, gen.Contract.Content, "Maria Silva")
		assert.Contains(t, gen.Contract.Content, "R$ 2500.00")
		assert.Contains(t, gen.Contract.Content, "R$ 7500.00")
		assert.Equal(t, entities.BudgetStatusContractSent, gen.Budget.Status)
		assert.True(t, gen.EmailSent)

		_, err = uc.Generate(ctx, b.ID)
		assert.ErrorIs(t, err, ErrContractExists)

		signed, err := uc.Sign(ctx, gen.Contract.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ContractStatusSignedByClient, signed.Contract.Status)
		require.NotNil(t, signed.Contract.SignedAt)
		assert.Equal(t, entities.BudgetStatusContractSigned, signed.Budget.Status)
		assert.True(t, signed.NotificationSent)

		got, err := uc.GetByBudgetID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, gen.Contract.ID, got.ID)

		_, err = uc.Sign(ctx, gen.Contract.ID)
		assert.ErrorIs(t, err, policy.ErrInvalidTransition)
	})

	t.Run("budget not accepted", func(t *testing.T) {
		s := newTestStore(t)
		b := s.seedBudget(t, entities.BudgetStatusSent)
		uc := NewContractUseCase(s.tx, s.contracts, s.budgets, s.dispatch, zapNop())

		_, err := uc.Generate(ctx, b.ID)
		assert.ErrorIs(t, err, policy.ErrInvalidTransition)
		assert.EqualValues(t, 0, s.countRows(t, "contracts", "budget_id = ?", b.ID))
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestStore(t)
		uc := NewContractUseCase(s.tx, s.contracts, s.budgets, s.dispatch, zapNop())

		_, err := uc.Generate(ctx, "missing")
		assert.ErrorIs(t, err, ErrBudgetNotFound)
		_, err = uc.GetByBudgetID(ctx, "missing")
		assert.ErrorIs(t, err, ErrContractNotFound)
		_, err = uc.Sign(ctx, "missing")
		assert.ErrorIs(t, err, ErrContractNotFound)
	})
}
