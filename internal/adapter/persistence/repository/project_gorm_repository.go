package repository

import (
	"context"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type projectModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	BudgetID    string          `gorm:"size:36;not null;uniqueIndex"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Status      string          `gorm:"size:32;index;not null"`
	Progress    int             `gorm:"not null;default:0"`
	Complexity  string          `gorm:"size:32"`
	Timeline    string          `gorm:"size:32"`
	Budget      decimal.Decimal `gorm:"type:decimal(14,2)"`
	ClientID    string          `gorm:"size:36;index;not null"`
	ClientName  string          `gorm:"size:255"`
	CreatedByID *string         `gorm:"size:36"`
	StartDate   *time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (projectModel) TableName() string { return "projects" }

// ProjectGormRepository persists Project entities. budget_id is unique: the
// second insert for the same budget fails with interfaces.ErrDuplicateKey.
type ProjectGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectGormRepository)(nil)

func NewProjectGormRepository(db *gorm.DB) *ProjectGormRepository {
	return &ProjectGormRepository{db: db}
}

func (r *ProjectGormRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := toProjectModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Project{}, translate(err, "create project")
	}
	return fromProjectModel(m), nil
}

func (r *ProjectGormRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProjectGormRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.Project, error) {
	return r.first(ctx, "budget_id = ?", budgetID)
}

func (r *ProjectGormRepository) List(ctx context.Context) ([]entities.Project, error) {
	var rows []projectModel
	if err := conn(ctx, r.db).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate(err, "list projects")
	}
	out := make([]entities.Project, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromProjectModel(m))
	}
	return out, nil
}

func (r *ProjectGormRepository) TransitionStatus(ctx context.Context, id string, from, to entities.ProjectStatus, progress int, completedAt *time.Time) (bool, error) {
	fields := map[string]any{
		"status":     string(to),
		"progress":   progress,
		"updated_at": utcNow(),
	}
	if completedAt != nil {
		fields["completed_at"] = *completedAt
	}
	res := conn(ctx, r.db).Model(&projectModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(fields)
	if res.Error != nil {
		return false, translate(res.Error, "transition project status")
	}
	return res.RowsAffected == 1, nil
}

// AdvanceProgress moves the project forward only while its stored progress is
// lower than progress. It reports false when the row is already at or past it.
func (r *ProjectGormRepository) AdvanceProgress(ctx context.Context, id string, status entities.ProjectStatus, progress int) (bool, error) {
	res := conn(ctx, r.db).Model(&projectModel{}).
		Where("id = ? AND progress < ?", id, progress).
		Updates(map[string]any{
			"status":     string(status),
			"progress":   progress,
			"updated_at": utcNow(),
		})
	if res.Error != nil {
		return false, translate(res.Error, "advance project progress")
	}
	return res.RowsAffected == 1, nil
}

func (r *ProjectGormRepository) first(ctx context.Context, query string, arg any) (entities.Project, error) {
	var m projectModel
	err := conn(ctx, r.db).Where(query, arg).First(&m).Error
	if isNotFound(err) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, translate(err, "get project")
	}
	return fromProjectModel(m), nil
}

func toProjectModel(p entities.Project) projectModel {
	return projectModel{
		ID:          p.ID,
		BudgetID:    p.BudgetID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Progress:    p.Progress,
		Complexity:  p.Complexity,
		Timeline:    p.Timeline,
		Budget:      p.Budget,
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

func fromProjectModel(m projectModel) entities.Project {
	return entities.Project{
		ID:          m.ID,
		BudgetID:    m.BudgetID,
		Name:        m.Name,
		Description: m.Description,
		Status:      entities.ProjectStatus(m.Status),
		Progress:    m.Progress,
		Complexity:  m.Complexity,
		Timeline:    m.Timeline,
		Budget:      m.Budget,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		CreatedByID: m.CreatedByID,
		StartDate:   m.StartDate,
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
