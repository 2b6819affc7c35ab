package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (quote).
//
// Domain notes:
//   - The progression is strictly forward; rejected and completed are terminal.
//   - Allowed moves live in budgetTransitions, never in handlers.
type BudgetStatus string

const (
	BudgetStatusPending          BudgetStatus = "pending"
	BudgetStatusSent             BudgetStatus = "sent"
	BudgetStatusAccepted         BudgetStatus = "accepted"
	BudgetStatusContractSent     BudgetStatus = "contract_sent"
	BudgetStatusContractSigned   BudgetStatus = "contract_signed"
	BudgetStatusDownPaymentSent  BudgetStatus = "down_payment_sent"
	BudgetStatusDownPaymentPaid  BudgetStatus = "down_payment_paid"
	BudgetStatusFinalPaymentSent BudgetStatus = "final_payment_sent"
	BudgetStatusFinalPaymentPaid BudgetStatus = "final_payment_paid"
	BudgetStatusCompleted        BudgetStatus = "completed"
	BudgetStatusRejected         BudgetStatus = "rejected"
)

var budgetTransitions = map[BudgetStatus][]BudgetStatus{
	BudgetStatusPending:          {BudgetStatusSent, BudgetStatusAccepted, BudgetStatusRejected},
	BudgetStatusSent:             {BudgetStatusAccepted, BudgetStatusRejected},
	BudgetStatusAccepted:         {BudgetStatusContractSent, BudgetStatusDownPaymentSent, BudgetStatusDownPaymentPaid},
	BudgetStatusContractSent:     {BudgetStatusContractSigned, BudgetStatusDownPaymentSent, BudgetStatusDownPaymentPaid},
	BudgetStatusContractSigned:   {BudgetStatusDownPaymentSent, BudgetStatusDownPaymentPaid},
	BudgetStatusDownPaymentSent:  {BudgetStatusDownPaymentPaid},
	BudgetStatusDownPaymentPaid:  {BudgetStatusFinalPaymentSent, BudgetStatusFinalPaymentPaid, BudgetStatusCompleted},
	BudgetStatusFinalPaymentSent: {BudgetStatusFinalPaymentPaid, BudgetStatusCompleted},
	BudgetStatusFinalPaymentPaid: {BudgetStatusCompleted},
}

// ParseBudgetStatus returns false for values outside the enumeration.
func ParseBudgetStatus(s string) (BudgetStatus, bool) {
	st := BudgetStatus(s)
	if st == BudgetStatusRejected || st == BudgetStatusCompleted {
		return st, true
	}
	_, ok := budgetTransitions[st]
	return st, ok
}

func (s BudgetStatus) CanTransitionTo(next BudgetStatus) bool {
	for _, allowed := range budgetTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BudgetStatus) IsTerminal() bool {
	return s == BudgetStatusRejected || s == BudgetStatusCompleted
}

// IsAcceptedOrLater reports whether the client already approved the proposal.
func (s BudgetStatus) IsAcceptedOrLater() bool {
	switch s {
	case BudgetStatusPending, BudgetStatusSent, BudgetStatusRejected, "":
		return false
	}
	return true
}

// Budget is the client's quote request, root aggregate before a Project exists.
//
// Monetary representation:
//   - EstimatedMin/EstimatedMax are the range shown to the client.
//   - FinalValue is the agreed price; it is frozen once the budget is accepted.
type Budget struct {
	ID           string           `json:"id"`
	ClientName   string           `json:"client_name"`
	ClientEmail  string           `json:"client_email"`
	ClientPhone  string           `json:"client_phone,omitempty"`
	Company      string           `json:"company,omitempty"`
	ProjectType  string           `json:"project_type"`
	Complexity   string           `json:"complexity"`
	Timeline     string           `json:"timeline"`
	Details      string           `json:"details,omitempty"`
	EstimatedMin decimal.Decimal  `json:"estimated_min"`
	EstimatedMax decimal.Decimal  `json:"estimated_max"`
	FinalValue   *decimal.Decimal `json:"final_value,omitempty"`
	Status       BudgetStatus     `json:"status"`
	ProjectID    *string          `json:"project_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (b Budget) HasProject() bool {
	return b.ProjectID != nil && *b.ProjectID != ""
}
