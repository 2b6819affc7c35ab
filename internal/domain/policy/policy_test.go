package policy

import (
	"errors"
	"testing"

	"agency_backoffice/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_ProposalApproved(t *testing.T) {
	for _, st := range []entities.BudgetStatus{entities.BudgetStatusPending, entities.BudgetStatusSent} {
		d, err := Decide(EventProposalApproved, State{BudgetStatus: st})
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusAccepted, d.NextBudgetStatus)
	}

	_, err := Decide(EventProposalApproved, State{BudgetStatus: entities.BudgetStatusRejected})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecide_ProposalRejectedOnlyBeforeAcceptance(t *testing.T) {
	_, err := Decide(EventProposalRejected, State{BudgetStatus: entities.BudgetStatusSent})
	require.NoError(t, err)

	_, err = Decide(EventProposalRejected, State{BudgetStatus: entities.BudgetStatusAccepted})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecide_DownPaymentConfirmed(t *testing.T) {
	t.Run("converts accepted budget", func(t *testing.T) {
		d, err := Decide(EventDownPaymentConfirmed, State{BudgetStatus: entities.BudgetStatusAccepted})
		require.NoError(t, err)
		assert.False(t, d.Replay)
		assert.True(t, d.Has(EffectConvertBudget))
		assert.Equal(t, entities.BudgetStatusDownPaymentPaid, d.NextBudgetStatus)
		assert.Equal(t, entities.ProjectStatusPlanning, d.NextProjectStatus)
	})

	t.Run("replay when project exists", func(t *testing.T) {
		d, err := Decide(EventDownPaymentConfirmed, State{BudgetStatus: entities.BudgetStatusDownPaymentPaid, HasProject: true})
		require.NoError(t, err)
		assert.True(t, d.Replay)
		assert.True(t, d.Has(EffectTopUpLinks))
		assert.False(t, d.Has(EffectConvertBudget))
		assert.Empty(t, d.NextBudgetStatus)
	})

	t.Run("rejects pending budget", func(t *testing.T) {
		_, err := Decide(EventDownPaymentConfirmed, State{BudgetStatus: entities.BudgetStatusPending})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestDecide_ProgressNotified(t *testing.T) {
	base := State{HasProject: true, ProjectStatus: entities.ProjectStatusDevelopment70, ProjectProgress: 70}

	t.Run("forward", func(t *testing.T) {
		s := base
		s.Progress = 100
		d, err := Decide(EventProgressNotified, s)
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectStatusDevelopment100, d.NextProjectStatus)
		assert.Equal(t, 100, d.Progress)
	})

	t.Run("regression rejected", func(t *testing.T) {
		s := base
		s.Progress = 50
		_, err := Decide(EventProgressNotified, s)
		assert.ErrorIs(t, err, ErrProgressRegression)
	})

	t.Run("same step is a no-op", func(t *testing.T) {
		s := base
		s.Progress = 70
		d, err := Decide(EventProgressNotified, s)
		require.NoError(t, err)
		assert.True(t, d.Replay)
		assert.Empty(t, d.Effects)
	})

	t.Run("invalid step", func(t *testing.T) {
		s := base
		s.Progress = 80
		_, err := Decide(EventProgressNotified, s)
		assert.ErrorIs(t, err, ErrInvalidProgress)
	})

	t.Run("no project", func(t *testing.T) {
		_, err := Decide(EventProgressNotified, State{Progress: 20})
		assert.True(t, errors.Is(err, ErrProjectRequired))
	})
}

func TestDecide_FinalPayment(t *testing.T) {
	d, err := Decide(EventFinalPaymentConfirmed, State{
		BudgetStatus:  entities.BudgetStatusFinalPaymentSent,
		HasProject:    true,
		ProjectStatus: entities.ProjectStatusWaitingFinalPayment,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ProjectStatusCompleted, d.NextProjectStatus)
	assert.Equal(t, entities.BudgetStatusCompleted, d.NextBudgetStatus)
	assert.Equal(t, 100, d.Progress)

	d, err = Decide(EventFinalPaymentConfirmed, State{HasProject: true, ProjectStatus: entities.ProjectStatusCompleted})
	require.NoError(t, err)
	assert.True(t, d.Replay)

	_, err = Decide(EventFinalPaymentConfirmed, State{HasProject: true, ProjectStatus: entities.ProjectStatusDevelopment50})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecide_FinalPaymentLink(t *testing.T) {
	d, err := Decide(EventFinalPaymentLinkCreated, State{
		BudgetStatus:  entities.BudgetStatusDownPaymentPaid,
		HasProject:    true,
		ProjectStatus: entities.ProjectStatusDevelopment100,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ProjectStatusWaitingFinalPayment, d.NextProjectStatus)
	assert.Equal(t, entities.BudgetStatusFinalPaymentSent, d.NextBudgetStatus)

	_, err = Decide(EventFinalPaymentLinkCreated, State{HasProject: true, ProjectStatus: entities.ProjectStatusDevelopment70})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecide_DeliveryScheduled(t *testing.T) {
	_, err := Decide(EventDeliveryScheduled, State{HasProject: true, ProjectStatus: entities.ProjectStatusWaitingFinalPayment})
	require.NoError(t, err)

	_, err = Decide(EventDeliveryScheduled, State{HasProject: true, ProjectStatus: entities.ProjectStatusPlanning})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
