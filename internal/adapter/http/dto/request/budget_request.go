package request

import (
	"strings"

	"agency_backoffice/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateBudgetRequest is the quote form submitted by a prospective client.
type CreateBudgetRequest struct {
	ClientName   string           `json:"clientName" binding:"required"`
	ClientEmail  string           `json:"clientEmail" binding:"required,email"`
	ClientPhone  string           `json:"clientPhone"`
	Company      string           `json:"company"`
	ProjectType  string           `json:"projectType" binding:"required"`
	Complexity   string           `json:"complexity"`
	Timeline     string           `json:"timeline"`
	Details      string           `json:"details"`
	EstimatedMin *decimal.Decimal `json:"estimatedMin" binding:"required"`
	EstimatedMax *decimal.Decimal `json:"estimatedMax" binding:"required"`
	FinalValue   *decimal.Decimal `json:"finalValue"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		ClientName:   strings.TrimSpace(r.ClientName),
		ClientEmail:  strings.TrimSpace(r.ClientEmail),
		ClientPhone:  strings.TrimSpace(r.ClientPhone),
		Company:      strings.TrimSpace(r.Company),
		ProjectType:  strings.TrimSpace(r.ProjectType),
		Complexity:   r.Complexity,
		Timeline:     r.Timeline,
		Details:      r.Details,
		EstimatedMin: derefDecimal(r.EstimatedMin),
		EstimatedMax: derefDecimal(r.EstimatedMax),
		FinalValue:   r.FinalValue,
	}
}

type UpdateFinalValueRequest struct {
	FinalValue *decimal.Decimal `json:"finalValue" binding:"required"`
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
