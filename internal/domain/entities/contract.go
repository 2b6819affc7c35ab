package entities

import "time"

type ContractStatus string

const (
	ContractStatusPending        ContractStatus = "pending"
	ContractStatusSent           ContractStatus = "sent"
	ContractStatusSignedByClient ContractStatus = "signed_by_client"
	ContractStatusSigned         ContractStatus = "signed"
)

// Contract is one-to-one with a Budget and gets annexed to the Project after conversion.
type Contract struct {
	ID        string         `json:"id"`
	BudgetID  string         `json:"budget_id"`
	Content   string         `json:"content"`
	Status    ContractStatus `json:"status"`
	Confirmed bool           `json:"confirmed"`
	SentAt    *time.Time     `json:"sent_at,omitempty"`
	SignedAt  *time.Time     `json:"signed_at,omitempty"`
	ProjectID *string        `json:"project_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
