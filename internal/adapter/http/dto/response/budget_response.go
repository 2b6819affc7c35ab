package response

import (
	"time"

	"agency_backoffice/internal/domain/entities"
)

type BudgetResponse struct {
	ID           string    `json:"id"`
	ClientName   string    `json:"clientName"`
	ClientEmail  string    `json:"clientEmail"`
	ClientPhone  string    `json:"clientPhone,omitempty"`
	Company      string    `json:"company,omitempty"`
	ProjectType  string    `json:"projectType"`
	Complexity   string    `json:"complexity"`
	Timeline     string    `json:"timeline"`
	Details      string    `json:"details,omitempty"`
	EstimatedMin string    `json:"estimatedMin"`
	EstimatedMax string    `json:"estimatedMax"`
	FinalValue   *string   `json:"finalValue,omitempty"`
	Status       string    `json:"status"`
	ProjectID    *string   `json:"projectId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID,
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientPhone:  b.ClientPhone,
		Company:      b.Company,
		ProjectType:  b.ProjectType,
		Complexity:   b.Complexity,
		Timeline:     b.Timeline,
		Details:      b.Details,
		EstimatedMin: money(b.EstimatedMin),
		EstimatedMax: money(b.EstimatedMax),
		FinalValue:   optionalMoney(b.FinalValue),
		Status:       string(b.Status),
		ProjectID:    b.ProjectID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func FromBudgets(list []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudget(b))
	}
	return out
}
