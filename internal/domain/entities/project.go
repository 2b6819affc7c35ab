package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus is the post-conversion lifecycle. It only exists once a Project row exists.
type ProjectStatus string

const (
	ProjectStatusPlanning            ProjectStatus = "planning"
	ProjectStatusDevelopment20       ProjectStatus = "development_20"
	ProjectStatusDevelopment50       ProjectStatus = "development_50"
	ProjectStatusDevelopment70       ProjectStatus = "development_70"
	ProjectStatusDevelopment100      ProjectStatus = "development_100"
	ProjectStatusWaitingFinalPayment ProjectStatus = "waiting_final_payment"
	ProjectStatusCompleted           ProjectStatus = "completed"
)

// ProgressSteps are the only values accepted by a progress notification.
var ProgressSteps = []int{20, 50, 70, 100}

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusPlanning:            {ProjectStatusDevelopment20, ProjectStatusDevelopment50, ProjectStatusDevelopment70, ProjectStatusDevelopment100},
	ProjectStatusDevelopment20:       {ProjectStatusDevelopment50, ProjectStatusDevelopment70, ProjectStatusDevelopment100},
	ProjectStatusDevelopment50:       {ProjectStatusDevelopment70, ProjectStatusDevelopment100},
	ProjectStatusDevelopment70:       {ProjectStatusDevelopment100},
	ProjectStatusDevelopment100:      {ProjectStatusWaitingFinalPayment, ProjectStatusCompleted},
	ProjectStatusWaitingFinalPayment: {ProjectStatusCompleted},
}

func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValidProgressStep reports whether n is one of 20, 50, 70 or 100.
func IsValidProgressStep(n int) bool {
	for _, s := range ProgressSteps {
		if s == n {
			return true
		}
	}
	return false
}

// DevelopmentStatus maps a progress step to its development_<N> status.
func DevelopmentStatus(progress int) (ProjectStatus, error) {
	if !IsValidProgressStep(progress) {
		return "", fmt.Errorf("invalid progress step %d", progress)
	}
	return ProjectStatus(fmt.Sprintf("development_%d", progress)), nil
}

type Project struct {
	ID          string          `json:"id"`
	BudgetID    string          `json:"budget_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      ProjectStatus   `json:"status"`
	Progress    int             `json:"progress"`
	Complexity  string          `json:"complexity"`
	Timeline    string          `json:"timeline"`
	Budget      decimal.Decimal `json:"budget"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name"`
	CreatedByID *string         `json:"created_by_id,omitempty"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
