package response

import (
	"time"

	"agency_backoffice/internal/domain/entities"
)

type ContractResponse struct {
	ID        string     `json:"id"`
	BudgetID  string     `json:"budgetId"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	Confirmed bool       `json:"confirmed"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	SignedAt  *time.Time `json:"signedAt,omitempty"`
	ProjectID *string    `json:"projectId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:        c.ID,
		BudgetID:  c.BudgetID,
		Content:   c.Content,
		Status:    string(c.Status),
		Confirmed: c.Confirmed,
		SentAt:    c.SentAt,
		SignedAt:  c.SignedAt,
		ProjectID: c.ProjectID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func optionalContract(c *entities.Contract) *ContractResponse {
	if c == nil {
		return nil
	}
	r := FromContract(*c)
	return &r
}
