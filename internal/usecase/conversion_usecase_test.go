package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionUseCase_ConvertBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("creates project client and paid down payment", func(t *testing.T) {
		s := newTestStore(t)
		admin := s.seedAdmin(t)
		b := s.seedBudget(t, entities.BudgetStatusDownPaymentSent)

		res, err := s.conversion().ConvertBudget(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, res.Replayed)

		assert.Equal(t, "Site - Maria Silva", res.Project.Name)
		assert.Equal(t, "Site institucional", res.Project.Description)
		assert.Equal(t, entities.ProjectStatusPlanning, res.Project.Status)
		assert.Equal(t, 0, res.Project.Progress)
		assert.Equal(t, "medium", res.Project.Complexity)
		assert.Equal(t, "urgent", res.Project.Timeline)
		assert.True(t, res.Project.Budget.Equal(decimal.NewFromInt(10000)))
		require.NotNil(t, res.Project.CreatedByID)
		assert.Equal(t, admin.ID, *res.Project.CreatedByID)
		require.NotNil(t, res.Project.DueDate)

		require.NotNil(t, res.Client)
		assert.Equal(t, "Maria", res.Client.FirstName)
		assert.Equal(t, "Silva", res.Client.LastName)
		assert.Equal(t, "AUTO", res.Client.DocumentType)
		assert.True(t, strings.HasPrefix(res.Client.Document, "AUTO_"))
		assert.Equal(t, "maria@example.com", res.Client.PrimaryEmail())

		assert.Equal(t, entities.PaymentTypeDownPayment, res.Payment.Type)
		assert.Equal(t, entities.PaymentStatusPaid, res.Payment.Status)
		assert.Equal(t, "2500.00", res.Payment.Amount.StringFixed(2))
		require.NotNil(t, res.Payment.PaidAt)
		require.NotNil(t, res.Payment.ProjectID)
		assert.Equal(t, res.Project.ID, *res.Payment.ProjectID)

		assert.Equal(t, entities.BudgetStatusDownPaymentPaid, res.Budget.Status)
		require.NotNil(t, res.Budget.ProjectID)
		assert.Equal(t, res.Project.ID, *res.Budget.ProjectID)

		assert.True(t, res.EmailSent)
		assert.True(t, res.NotificationSent)
		require.Equal(t, 1, s.mailer.count())
		assert.Contains(t, s.mailer.sent[0].Subject, res.Project.Name)
		notes := s.notes.all()
		require.Len(t, notes, 1)
		assert.Equal(t, admin.ID, notes[0].UserID)
		assert.Equal(t, "https://app.test/projects/"+res.Project.ID, notes[0].Link)
	})

	t.Run("second delivery is a replay", func(t *testing.T) {
		s := newTestStore(t)
		b := s.seedBudget(t, entities.BudgetStatusContractSigned)
		uc := s.conversion()

		first, err := uc.ConvertBudget(ctx, b.ID)
		require.NoError(t, err)
		second, err := uc.ConvertBudget(ctx, b.ID)
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.Equal(t, first.Project.ID, second.Project.ID)
		assert.Equal(t, first.Payment.ID, second.Payment.ID)
		assert.Equal(t, entities.BudgetStatusDownPaymentPaid, second.Budget.Status)
		assert.EqualValues(t, 1, s.countRows(t, "projects", "budget_id = ?", b.ID))
		assert.EqualValues(t, 1, s.countRows(t, "payments", "budget_id = ?", b.ID))
		assert.EqualValues(t, 1, s.countRows(t, "clients", "1 = 1"))
		assert.Equal(t, 1, s.mailer.count())
	})

	t.Run("concurrent deliveries create one project", func(t *testing.T) {
		s := newTestStore(t)
		b := s.seedBudget(t, entities.BudgetStatusDownPaymentSent)
		uc := s.conversion()

		const n = 8
		var wg sync.WaitGroup
		results := make([]ConversionResult, n)
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = uc.ConvertBudget(ctx, b.ID)
			}(i)
		}
		wg.Wait()

		converted := 0
		for i := 0; i < n; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, results[0].Project.ID, results[i].Project.ID)
			if !results[i].Replayed {
				converted++
			}
		}
		assert.Equal(t, 1, converted)
		assert.EqualValues(t, 1, s.countRows(t, "projects", "budget_id = ?", b.ID))
		assert.EqualValues(t, 1, s.countRows(t, "payments", "budget_id = ? AND type = ?", b.ID, "down_payment"))
	})

	t.Run("reuses client matched by email", func(t *testing.T) {
		s := newTestStore(t)
		b := s.seedBudget(t, entities.BudgetStatusAccepted)
		existing, err := NewClientUseCase(s.clients).Create(ctx, CreateClientInput{
			Name:         "Maria S.",
			DocumentType: "CPF",
			Document:     "529.982.247-25",
			Emails:       []entities.ContactEntry{{Value: "maria@example.com"}},
		})
		require.NoError(t, err)

		res, err := s.conversion().ConvertBudget(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, res.Client)
		assert.Equal(t, existing.ID, res.Client.ID)
		assert.Equal(t, existing.ID, res.Project.ClientID)
		assert.EqualValues(t, 1, s.countRows(t, "clients", "1 = 1"))
	})

	t.Run("links and signs the contract", func(t *testing.T) {
		s := newTestStore(t)
		b := s.seedBudget(t, entities.BudgetStatusContractSent)
		c, err := s.contracts.Create(ctx, entities.Contract{
			ID:        uuid.NewString(),
			BudgetID:  b.ID,
			Content:   "contrato",
			Status:    entities.ContractStatusSent,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		res, err := s.conversion().ConvertBudget(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, res.Contract)
		assert.Equal(t, c.ID, res.Contract.ID)
		assert.Equal(t, entities.ContractStatusSigned, res.Contract.Status)
		assert.True(t, res.Contract.Confirmed)
		require.NotNil(t, res.Contract.SignedAt)
		require.NotNil(t, res.Contract.ProjectID)
		assert.Equal(t, res.Project.ID, *res.Contract.ProjectID)
	})

	t.Run("project without budget link is replayed and linked", func(t *testing.T) {
		s := newTestStore(t)
		b := s.seedBudget(t, entities.BudgetStatusDownPaymentSent)
		now := time.Now().UTC()
		orphan, err := s.projects.Create(ctx, entities.Project{
			ID:        uuid.NewString(),
			BudgetID:  b.ID,
			Name:      "Site - Maria Silva",
			Status:    entities.ProjectStatusPlanning,
			ClientID:  uuid.NewString(),
			Budget:    decimal.NewFromInt(10000),
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)

		res, err := s.conversion().ConvertBudget(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, orphan.ID, res.Project.ID)
		require.NotNil(t, res.Budget.ProjectID)
		assert.Equal(t, orphan.ID, *res.Budget.ProjectID)
		assert.Equal(t, entities.BudgetStatusDownPaymentPaid, res.Budget.Status)
		assert.Equal(t, entities.PaymentStatusPaid, res.Payment.Status)

		ok, err := s.projects.TransitionStatus(ctx, orphan.ID, entities.ProjectStatusPlanning, entities.ProjectStatusWaitingFinalPayment, 100, nil)
		require.NoError(t, err)
		require.True(t, ok)

		done, err := s.conversion().CompleteProject(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectStatusCompleted, done.Project.Status)
		assert.Equal(t, entities.BudgetStatusCompleted, done.Budget.Status)
	})

	t.Run("errors", func(t *testing.T) {
		s := newTestStore(t)
		uc := s.conversion()

		_, err := uc.ConvertBudget(ctx, " ")
		assert.ErrorIs(t, err, ErrInvalidBudgetID)

		_, err = uc.ConvertBudget(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrBudgetNotFound)

		pending := s.seedBudget(t, entities.BudgetStatusPending)
		_, err = uc.ConvertBudget(ctx, pending.ID)
		assert.ErrorIs(t, err, policy.ErrInvalidTransition)
		assert.EqualValues(t, 0, s.countRows(t, "projects", "budget_id = ?", pending.ID))

		noValue := s.seedBudget(t, entities.BudgetStatusAccepted)
		require.NoError(t, s.db.Table("budgets").Where("id = ?", noValue.ID).Update("final_value", nil).Error)
		_, err = uc.ConvertBudget(ctx, noValue.ID)
		assert.ErrorIs(t, err, ErrFinalValueRequired)
	})

	t.Run("email failure does not fail the conversion", func(t *testing.T) {
		s := newTestStore(t)
		s.mailer.err = assert.AnError
		b := s.seedBudget(t, entities.BudgetStatusAccepted)

		res, err := s.conversion().ConvertBudget(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, res.EmailSent)
		assert.Equal(t, assert.AnError.Error(), res.EmailError)
		assert.Equal(t, entities.BudgetStatusDownPaymentPaid, res.Budget.Status)
	})
}

func TestConversionUseCase_CompleteProject(t *testing.T) {
	ctx := context.Background()

	convertAndFinish := func(t *testing.T, s *testStore) ConversionResult {
		t.Helper()
		res, err := s.conversion().ConvertBudget(ctx, s.seedBudget(t, entities.BudgetStatusAccepted).ID)
		require.NoError(t, err)
		ok, err := s.projects.TransitionStatus(ctx, res.Project.ID, entities.ProjectStatusPlanning, entities.ProjectStatusWaitingFinalPayment, 100, nil)
		require.NoError(t, err)
		require.True(t, ok)
		return res
	}

	t.Run("completes project and budget", func(t *testing.T) {
		s := newTestStore(t)
		converted := convertAndFinish(t, s)

		res, err := s.conversion().CompleteProject(ctx, converted.Budget.ID)
		require.NoError(t, err)
		assert.False(t, res.Replayed)
		assert.Equal(t, entities.ProjectStatusCompleted, res.Project.Status)
		assert.Equal(t, 100, res.Project.Progress)
		require.NotNil(t, res.Project.CompletedAt)
		assert.Equal(t, entities.BudgetStatusCompleted, res.Budget.Status)
		assert.Equal(t, entities.PaymentTypeFinalPayment, res.Payment.Type)
		assert.Equal(t, entities.PaymentStatusPaid, res.Payment.Status)
		assert.Equal(t, "7500.00", res.Payment.Amount.StringFixed(2))

		down, err := s.payments.GetByBudgetAndType(ctx, converted.Budget.ID, entities.PaymentTypeDownPayment)
		require.NoError(t, err)
		assert.True(t, down.Amount.Add(res.Payment.Amount).Equal(decimal.NewFromInt(10000)))
	})

	t.Run("second confirmation is a replay", func(t *testing.T) {
		s := newTestStore(t)
		converted := convertAndFinish(t, s)
		uc := s.conversion()

		_, err := uc.CompleteProject(ctx, converted.Budget.ID)
		require.NoError(t, err)
		again, err := uc.CompleteProject(ctx, converted.Budget.ID)
		require.NoError(t, err)
		assert.True(t, again.Replayed)
		assert.EqualValues(t, 1, s.countRows(t, "payments", "budget_id = ? AND type = ?", converted.Budget.ID, "final_payment"))
	})

	t.Run("project still in development", func(t *testing.T) {
		s := newTestStore(t)
		res, err := s.conversion().ConvertBudget(ctx, s.seedBudget(t, entities.BudgetStatusAccepted).ID)
		require.NoError(t, err)

		_, err = s.conversion().CompleteProject(ctx, res.Budget.ID)
		assert.ErrorIs(t, err, policy.ErrInvalidTransition)
		assert.EqualValues(t, 0, s.countRows(t, "payments", "budget_id = ? AND type = ?", res.Budget.ID, "final_payment"))
	})

	t.Run("budget without project", func(t *testing.T) {
		s := newTestStore(t)
		b := s.seedBudget(t, entities.BudgetStatusAccepted)
		_, err := s.conversion().CompleteProject(ctx, b.ID)
		assert.ErrorIs(t, err, policy.ErrProjectRequired)
	})
}
