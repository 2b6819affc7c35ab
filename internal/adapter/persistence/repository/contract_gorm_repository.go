package repository

import (
	"context"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type contractModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	BudgetID  string  `gorm:"size:36;not null;uniqueIndex"`
	Content   string  `gorm:"type:text"`
	Status    string  `gorm:"size:32;not null"`
	Confirmed bool    `gorm:"not null;default:false"`
	ProjectID *string `gorm:"size:36;index"`
	SentAt    *time.Time
	SignedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (contractModel) TableName() string { return "contracts" }

type ContractGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IContractRepository = (*ContractGormRepository)(nil)

func NewContractGormRepository(db *gorm.DB) *ContractGormRepository {
	return &ContractGormRepository{db: db}
}

func (r *ContractGormRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	m := toContractModel(c)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Contract{}, translate(err, "create contract")
	}
	return fromContractModel(m), nil
}

func (r *ContractGormRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ContractGormRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.Contract, error) {
	return r.first(ctx, "budget_id = ?", budgetID)
}

func (r *ContractGormRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	m := toContractModel(c)
	m.UpdatedAt = utcNow()
	if err := conn(ctx, r.db).Save(&m).Error; err != nil {
		return entities.Contract{}, translate(err, "update contract")
	}
	return fromContractModel(m), nil
}

func (r *ContractGormRepository) first(ctx context.Context, query string, arg any) (entities.Contract, error) {
	var m contractModel
	err := conn(ctx, r.db).Where(query, arg).First(&m).Error
	if isNotFound(err) {
		return entities.Contract{}, nil
	}
	if err != nil {
		return entities.Contract{}, translate(err, "get contract")
	}
	return fromContractModel(m), nil
}

func toContractModel(c entities.Contract) contractModel {
	return contractModel{
		ID:        c.ID,
		BudgetID:  c.BudgetID,
		Content:   c.Content,
		Status:    string(c.Status),
		Confirmed: c.Confirmed,
		ProjectID: c.ProjectID,
		SentAt:    c.SentAt,
		SignedAt:  c.SignedAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromContractModel(m contractModel) entities.Contract {
	return entities.Contract{
		ID:        m.ID,
		BudgetID:  m.BudgetID,
		Content:   m.Content,
		Status:    entities.ContractStatus(m.Status),
		Confirmed: m.Confirmed,
		ProjectID: m.ProjectID,
		SentAt:    m.SentAt,
		SignedAt:  m.SignedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
