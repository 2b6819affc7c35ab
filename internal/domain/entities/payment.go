package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
//
// A payment starts pending when a link is generated and becomes paid once the
// provider confirms it. Paid is never downgraded back to pending.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentType identifies which half of the staged split a payment row holds.
type PaymentType string

const (
	PaymentTypeDownPayment  PaymentType = "down_payment"
	PaymentTypeFinalPayment PaymentType = "final_payment"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeDownPayment || t == PaymentTypeFinalPayment
}

var downPaymentRate = decimal.NewFromFloat(0.25)

// SplitFinalValue returns the 25% down payment and the 75% remainder.
// The final share is computed as the remainder so both always sum to finalValue.
func SplitFinalValue(finalValue decimal.Decimal) (down, final decimal.Decimal) {
	down = finalValue.Mul(downPaymentRate).Round(2)
	final = finalValue.Sub(down)
	return down, final
}

// AmountFor returns the share of finalValue owed for the given payment type.
func AmountFor(t PaymentType, finalValue decimal.Decimal) decimal.Decimal {
	down, final := SplitFinalValue(finalValue)
	if t == PaymentTypeFinalPayment {
		return final
	}
	return down
}

// Payment is a ledger row.
//
// Storage model (relational):
//   - PK: id
//   - UNIQUE (budget_id, type): at most one row per staged payment
//
// Payment link:
//   - PaymentLinkID/PaymentLinkURL are returned by the provider when a checkout
//     link is generated; confirmation flows may create the row without them.
type Payment struct {
	ID             string          `json:"id"`
	BudgetID       string          `json:"budget_id"`
	ProjectID      *string         `json:"project_id,omitempty"`
	Type           PaymentType     `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Status         PaymentStatus   `json:"status"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	DueDate        time.Time       `json:"due_date"`
	PaymentLinkID  string          `json:"payment_link_id,omitempty"`
	PaymentLinkURL string          `json:"payment_link_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
