// Package policy decides budget and project status moves for external events.
//
// Decide is pure: it reads the current state and returns the next statuses and
// the effects a use case must apply. It never touches storage.
package policy

import (
	"errors"
	"fmt"

	"agency_backoffice/internal/domain/entities"
)

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrProgressRegression = errors.New("project progress cannot decrease")
	ErrInvalidProgress    = errors.New("invalid progress value")
	ErrProjectRequired    = errors.New("project does not exist yet")
)

type Event string

const (
	EventProposalSent            Event = "proposal_sent"
	EventProposalApproved        Event = "proposal_approved"
	EventProposalRejected        Event = "proposal_rejected"
	EventContractSent            Event = "contract_sent"
	EventContractSigned          Event = "contract_signed"
	EventDownPaymentLinkCreated  Event = "down_payment_link_created"
	EventDownPaymentConfirmed    Event = "down_payment_confirmed"
	EventProgressNotified        Event = "progress_notified"
	EventFinalPaymentLinkCreated Event = "final_payment_link_created"
	EventFinalPaymentConfirmed   Event = "final_payment_confirmed"
	EventDeliveryScheduled       Event = "delivery_scheduled"
)

type Effect string

const (
	EffectConvertBudget   Effect = "convert_budget"
	EffectTopUpLinks      Effect = "top_up_links"
	EffectCompleteProject Effect = "complete_project"
	EffectUpsertSchedule  Effect = "upsert_schedule"
	EffectSendEmail       Effect = "send_email"
	EffectNotify          Effect = "notify"
)

// State is the snapshot the policy decides on.
type State struct {
	BudgetStatus    entities.BudgetStatus
	HasProject      bool
	ProjectStatus   entities.ProjectStatus
	ProjectProgress int
	// Progress is the requested step for EventProgressNotified.
	Progress int
}

// Decision is the outcome of Decide. Empty next statuses mean "leave as is".
type Decision struct {
	NextBudgetStatus  entities.BudgetStatus
	NextProjectStatus entities.ProjectStatus
	Progress          int
	// Replay marks a redelivered event that must only top up missing links.
	Replay  bool
	Effects []Effect
}

func (d Decision) Has(e Effect) bool {
	for _, x := range d.Effects {
		if x == e {
			return true
		}
	}
	return false
}

func Decide(ev Event, s State) (Decision, error) {
	switch ev {
	case EventProposalSent:
		return budgetMove(s.BudgetStatus, entities.BudgetStatusSent, EffectSendEmail)
	case EventProposalApproved:
		if s.BudgetStatus != entities.BudgetStatusPending && s.BudgetStatus != entities.BudgetStatusSent {
			return Decision{}, transitionErr(ev, s.BudgetStatus)
		}
		return budgetMove(s.BudgetStatus, entities.BudgetStatusAccepted, EffectNotify)
	case EventProposalRejected:
		return budgetMove(s.BudgetStatus, entities.BudgetStatusRejected, EffectNotify)
	case EventContractSent:
		if s.BudgetStatus != entities.BudgetStatusAccepted {
			return Decision{}, transitionErr(ev, s.BudgetStatus)
		}
		return budgetMove(s.BudgetStatus, entities.BudgetStatusContractSent, EffectSendEmail)
	case EventContractSigned:
		if s.BudgetStatus != entities.BudgetStatusContractSent {
			return Decision{}, transitionErr(ev, s.BudgetStatus)
		}
		return budgetMove(s.BudgetStatus, entities.BudgetStatusContractSigned, EffectNotify)
	case EventDownPaymentLinkCreated:
		if s.HasProject {
			return Decision{}, transitionErr(ev, s.BudgetStatus)
		}
		if s.BudgetStatus == entities.BudgetStatusDownPaymentSent {
			// Regenerating a link keeps the status.
			return Decision{Effects: []Effect{EffectSendEmail}}, nil
		}
		return budgetMove(s.BudgetStatus, entities.BudgetStatusDownPaymentSent, EffectSendEmail)
	case EventDownPaymentConfirmed:
		return decideDownPayment(s)
	case EventProgressNotified:
		return decideProgress(s)
	case EventFinalPaymentLinkCreated:
		return decideFinalLink(s)
	case EventFinalPaymentConfirmed:
		return decideFinalPayment(s)
	case EventDeliveryScheduled:
		if !s.HasProject {
			return Decision{}, ErrProjectRequired
		}
		if s.ProjectStatus != entities.ProjectStatusCompleted && s.ProjectStatus != entities.ProjectStatusWaitingFinalPayment {
			return Decision{}, fmt.Errorf("%w: cannot schedule delivery for project in %s", ErrInvalidTransition, s.ProjectStatus)
		}
		return Decision{Effects: []Effect{EffectUpsertSchedule, EffectNotify}}, nil
	}
	return Decision{}, fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, ev)
}

func decideDownPayment(s State) (Decision, error) {
	if s.HasProject {
		return Decision{Replay: true, Effects: []Effect{EffectTopUpLinks}}, nil
	}
	if !s.BudgetStatus.CanTransitionTo(entities.BudgetStatusDownPaymentPaid) {
		return Decision{}, transitionErr(EventDownPaymentConfirmed, s.BudgetStatus)
	}
	return Decision{
		NextBudgetStatus:  entities.BudgetStatusDownPaymentPaid,
		NextProjectStatus: entities.ProjectStatusPlanning,
		Effects:           []Effect{EffectConvertBudget, EffectSendEmail, EffectNotify},
	}, nil
}

func decideProgress(s State) (Decision, error) {
	if !s.HasProject {
		return Decision{}, ErrProjectRequired
	}
	if !entities.IsValidProgressStep(s.Progress) {
		return Decision{}, fmt.Errorf("%w: %d", ErrInvalidProgress, s.Progress)
	}
	if s.Progress == s.ProjectProgress {
		return Decision{Replay: true, Progress: s.Progress}, nil
	}
	if s.Progress < s.ProjectProgress {
		return Decision{}, fmt.Errorf("%w: %d after %d", ErrProgressRegression, s.Progress, s.ProjectProgress)
	}
	next, err := entities.DevelopmentStatus(s.Progress)
	if err != nil {
		return Decision{}, err
	}
	if !s.ProjectStatus.CanTransitionTo(next) {
		return Decision{}, fmt.Errorf("%w: project %s -> %s", ErrInvalidTransition, s.ProjectStatus, next)
	}
	return Decision{
		NextProjectStatus: next,
		Progress:          s.Progress,
		Effects:           []Effect{EffectSendEmail, EffectNotify},
	}, nil
}

func decideFinalLink(s State) (Decision, error) {
	if !s.HasProject {
		return Decision{}, ErrProjectRequired
	}
	switch s.ProjectStatus {
	case entities.ProjectStatusDevelopment100:
		d := Decision{NextProjectStatus: entities.ProjectStatusWaitingFinalPayment, Effects: []Effect{EffectSendEmail}}
		if s.BudgetStatus.CanTransitionTo(entities.BudgetStatusFinalPaymentSent) {
			d.NextBudgetStatus = entities.BudgetStatusFinalPaymentSent
		}
		return d, nil
	case entities.ProjectStatusWaitingFinalPayment:
		d := Decision{Effects: []Effect{EffectSendEmail}}
		if s.BudgetStatus.CanTransitionTo(entities.BudgetStatusFinalPaymentSent) {
			d.NextBudgetStatus = entities.BudgetStatusFinalPaymentSent
		}
		return d, nil
	}
	return Decision{}, fmt.Errorf("%w: final payment link for project in %s", ErrInvalidTransition, s.ProjectStatus)
}

func decideFinalPayment(s State) (Decision, error) {
	if !s.HasProject {
		return Decision{}, ErrProjectRequired
	}
	switch s.ProjectStatus {
	case entities.ProjectStatusCompleted:
		return Decision{Replay: true, Effects: []Effect{EffectTopUpLinks}}, nil
	case entities.ProjectStatusWaitingFinalPayment:
		return Decision{
			NextBudgetStatus:  entities.BudgetStatusCompleted,
			NextProjectStatus: entities.ProjectStatusCompleted,
			Progress:          100,
			Effects:           []Effect{EffectCompleteProject, EffectSendEmail, EffectNotify},
		}, nil
	}
	return Decision{}, fmt.Errorf("%w: final payment for project in %s", ErrInvalidTransition, s.ProjectStatus)
}

func budgetMove(from, to entities.BudgetStatus, effects ...Effect) (Decision, error) {
	if !from.CanTransitionTo(to) {
		return Decision{}, fmt.Errorf("%w: budget %s -> %s", ErrInvalidTransition, from, to)
	}
	return Decision{NextBudgetStatus: to, Effects: effects}, nil
}

func transitionErr(ev Event, from entities.BudgetStatus) error {
	return fmt.Errorf("%w: %s not allowed for budget in %s", ErrInvalidTransition, ev, from)
}
