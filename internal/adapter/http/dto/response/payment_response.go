package response

import (
	"time"

	"agency_backoffice/internal/domain/entities"
)

type PaymentResponse struct {
	ID             string     `json:"id"`
	BudgetID       string     `json:"budgetId"`
	ProjectID      *string    `json:"projectId,omitempty"`
	Type           string     `json:"type"`
	Amount         string     `json:"amount"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	DueDate        time.Time  `json:"dueDate"`
	PaymentLinkID  string     `json:"paymentLinkId,omitempty"`
	PaymentLinkURL string     `json:"paymentLinkUrl,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		BudgetID:       p.BudgetID,
		ProjectID:      p.ProjectID,
		Type:           string(p.Type),
		Amount:         money(p.Amount),
		Status:         string(p.Status),
		PaidAt:         p.PaidAt,
		DueDate:        p.DueDate,
		PaymentLinkID:  p.PaymentLinkID,
		PaymentLinkURL: p.PaymentLinkURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
