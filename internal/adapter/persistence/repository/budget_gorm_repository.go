package repository

import (
	"context"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type budgetModel struct {
	ID           string              `gorm:"primaryKey;size:36"`
	ClientName   string              `gorm:"size:255;not null"`
	ClientEmail  string              `gorm:"size:255;index"`
	ClientPhone  string              `gorm:"size:64"`
	Company      string              `gorm:"size:255"`
	ProjectType  string              `gorm:"size:120;not null"`
	Complexity   string              `gorm:"size:32"`
	Timeline     string              `gorm:"size:32"`
	Details      string              `gorm:"type:text"`
	EstimatedMin decimal.Decimal     `gorm:"type:decimal(14,2)"`
	EstimatedMax decimal.Decimal     `gorm:"type:decimal(14,2)"`
	FinalValue   decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	Status       string              `gorm:"size:32;index;not null"`
	ProjectID    *string             `gorm:"size:36;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (budgetModel) TableName() string { return "budgets" }

// BudgetGormRepository persists Budget entities in the relational store.
//
// project_id carries a unique index and is only ever written through
// LinkProject's compare-and-swap, so a budget cannot end up with two projects.
type BudgetGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBudgetRepository = (*BudgetGormRepository)(nil)

func NewBudgetGormRepository(db *gorm.DB) *BudgetGormRepository {
	return &BudgetGormRepository{db: db}
}

func (r *BudgetGormRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	m := toBudgetModel(b)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Budget{}, translate(err, "create budget")
	}
	return fromBudgetModel(m), nil
}

func (r *BudgetGormRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var m budgetModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if isNotFound(err) {
		return entities.Budget{}, nil
	}
	if err != nil {
		return entities.Budget{}, translate(err, "get budget")
	}
	return fromBudgetModel(m), nil
}

func (r *BudgetGormRepository) List(ctx context.Context, status *entities.BudgetStatus) ([]entities.Budget, error) {
	q := conn(ctx, r.db).Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	var rows []budgetModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err, "list budgets")
	}
	out := make([]entities.Budget, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromBudgetModel(m))
	}
	return out, nil
}

// TransitionStatus moves the budget from one status to another. It reports
// false when the stored status is no longer from.
func (r *BudgetGormRepository) TransitionStatus(ctx context.Context, id string, from, to entities.BudgetStatus) (bool, error) {
	res := conn(ctx, r.db).Model(&budgetModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": utcNow(),
		})
	if res.Error != nil {
		return false, translate(res.Error, "transition budget status")
	}
	return res.RowsAffected == 1, nil
}

// UpdateFinalValue writes the pricing fields while the budget is still
// negotiable (pending or sent). It returns a zero Budget otherwise.
func (r *BudgetGormRepository) UpdateFinalValue(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	res := conn(ctx, r.db).Model(&budgetModel{}).
		Where("id = ? AND status IN ?", b.ID, []string{string(entities.BudgetStatusPending), string(entities.BudgetStatusSent)}).
		Updates(map[string]any{
			"final_value":   toNullDecimal(b.FinalValue),
			"estimated_min": b.EstimatedMin,
			"estimated_max": b.EstimatedMax,
			"updated_at":    utcNow(),
		})
	if res.Error != nil {
		return entities.Budget{}, translate(res.Error, "update budget final value")
	}
	if res.RowsAffected == 0 {
		return entities.Budget{}, nil
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BudgetGormRepository) LinkProject(ctx context.Context, id, projectID string, status entities.BudgetStatus) (bool, error) {
	res := conn(ctx, r.db).Model(&budgetModel{}).
		Where("id = ? AND project_id IS NULL", id).
		Updates(map[string]any{
			"project_id": projectID,
			"status":     string(status),
			"updated_at": utcNow(),
		})
	if res.Error != nil {
		return false, translate(res.Error, "link budget project")
	}
	return res.RowsAffected == 1, nil
}

func toBudgetModel(b entities.Budget) budgetModel {
	return budgetModel{
		ID:           b.ID,
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientPhone:  b.ClientPhone,
		Company:      b.Company,
		ProjectType:  b.ProjectType,
		Complexity:   b.Complexity,
		Timeline:     b.Timeline,
		Details:      b.Details,
		EstimatedMin: b.EstimatedMin,
		EstimatedMax: b.EstimatedMax,
		FinalValue:   toNullDecimal(b.FinalValue),
		Status:       string(b.Status),
		ProjectID:    b.ProjectID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func fromBudgetModel(m budgetModel) entities.Budget {
	var fv *decimal.Decimal
	if m.FinalValue.Valid {
		v := m.FinalValue.Decimal
		fv = &v
	}
	return entities.Budget{
		ID:           m.ID,
		ClientName:   m.ClientName,
		ClientEmail:  m.ClientEmail,
		ClientPhone:  m.ClientPhone,
		Company:      m.Company,
		ProjectType:  m.ProjectType,
		Complexity:   m.Complexity,
		Timeline:     m.Timeline,
		Details:      m.Details,
		EstimatedMin: m.EstimatedMin,
		EstimatedMax: m.EstimatedMax,
		FinalValue:   fv,
		Status:       entities.BudgetStatus(m.Status),
		ProjectID:    m.ProjectID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
