package response

import (
	"time"

	"agency_backoffice/internal/domain/entities"
)

type ProjectResponse struct {
	ID          string     `json:"id"`
	BudgetID    string     `json:"budgetId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	Complexity  string     `json:"complexity"`
	Timeline    string     `json:"timeline"`
	Budget      string     `json:"budget"`
	ClientID    string     `json:"clientId"`
	ClientName  string     `json:"clientName"`
	CreatedByID *string    `json:"createdById,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		BudgetID:    p.BudgetID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Progress:    p.Progress,
		Complexity:  p.Complexity,
		Timeline:    p.Timeline,
		Budget:      money(p.Budget),
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		CreatedByID: p.CreatedByID,
		StartDate:   p.StartDate,
		DueDate:     p.DueDate,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProject(p))
	}
	return out
}

func optionalProject(p *entities.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	r := FromProject(*p)
	return &r
}
