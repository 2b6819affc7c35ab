package interfaces

import (
	"context"
	"errors"
	"time"

	"agency_backoffice/internal/domain/entities"
)

// ErrDuplicateKey is returned by repositories when a unique index rejects a write.
var ErrDuplicateKey = errors.New("duplicate key")

// Repositories return a zero-value entity (empty ID) and a nil error when a
// row does not exist. Use cases translate that into their own NotFound errors.

// ITransactor runs fn inside one database transaction. Repositories called
// with the ctx handed to fn join that transaction.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, status *entities.BudgetStatus) ([]entities.Budget, error)
	// TransitionStatus is a compare-and-swap on status; false means the stored
	// status was no longer from.
	TransitionStatus(ctx context.Context, id string, from, to entities.BudgetStatus) (bool, error)
	// UpdateFinalValue only applies while the budget is pending or sent and
	// returns a zero Budget otherwise.
	UpdateFinalValue(ctx context.Context, b entities.Budget) (entities.Budget, error)
	// LinkProject sets project_id and status only while project_id is still NULL.
	// It reports false when another writer linked the budget first.
	LinkProject(ctx context.Context, id, projectID string, status entities.BudgetStatus) (bool, error)
}

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	FindByEmailOrName(ctx context.Context, email, name string) (entities.Client, error)
}

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	FirstByRole(ctx context.Context, role entities.UserRole) (entities.User, error)
	First(ctx context.Context) (entities.User, error)
}

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	// TransitionStatus is a compare-and-swap on status that also writes progress
	// and completedAt.
	TransitionStatus(ctx context.Context, id string, from, to entities.ProjectStatus, progress int, completedAt *time.Time) (bool, error)
	// AdvanceProgress applies status/progress only when the stored progress is lower.
	AdvanceProgress(ctx context.Context, id string, status entities.ProjectStatus, progress int) (bool, error)
}

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
}

// IPaymentRepository persists the payment ledger. (budget_id, type) is unique.
// Update never turns a paid row back into pending; it returns the stored row instead.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByBudgetAndType(ctx context.Context, budgetID string, t entities.PaymentType) (entities.Payment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Payment, error)
}

type IScheduleRepository interface {
	Create(ctx context.Context, s entities.Schedule) (entities.Schedule, error)
	Update(ctx context.Context, s entities.Schedule) (entities.Schedule, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Schedule, error)
}

// INotificationRepository abstracts DynamoDB persistence for Notification.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (entities.Notification, error)
}
