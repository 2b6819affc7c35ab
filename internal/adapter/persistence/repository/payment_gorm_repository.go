package repository

import (
	"context"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentModel struct {
	ID             string          `gorm:"primaryKey;size:36"`
	BudgetID       string          `gorm:"size:36;not null;uniqueIndex:idx_payments_budget_type"`
	Type           string          `gorm:"size:32;not null;uniqueIndex:idx_payments_budget_type"`
	ProjectID      *string         `gorm:"size:36;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status         string          `gorm:"size:16;not null"`
	PaymentLinkID  string          `gorm:"size:128"`
	PaymentLinkURL string          `gorm:"size:512"`
	PaidAt         *time.Time
	DueDate        time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (paymentModel) TableName() string { return "payments" }

// PaymentGormRepository persists the payment ledger.
//
// Table requirements:
//   - PK: id
//   - UNIQUE idx_payments_budget_type (budget_id, type)
type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := toPaymentModel(p)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Payment{}, translate(err, "create payment")
	}
	return fromPaymentModel(m), nil
}

func (r *PaymentGormRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	q := conn(ctx, r.db).Model(&paymentModel{}).Where("id = ?", p.ID)
	if p.Status != entities.PaymentStatusPaid {
		q = q.Where("status <> ?", string(entities.PaymentStatusPaid))
	}
	res := q.Updates(map[string]any{
		"project_id":       p.ProjectID,
		"amount":           p.Amount,
		"status":           string(p.Status),
		"payment_link_id":  p.PaymentLinkID,
		"payment_link_url": p.PaymentLinkURL,
		"paid_at":          p.PaidAt,
		"updated_at":       utcNow(),
	})
	if res.Error != nil {
		return entities.Payment{}, translate(res.Error, "update payment")
	}
	return r.getByID(ctx, p.ID)
}

func (r *PaymentGormRepository) getByID(ctx context.Context, id string) (entities.Payment, error) {
	var m paymentModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if isNotFound(err) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, translate(err, "get payment")
	}
	return fromPaymentModel(m), nil
}

func (r *PaymentGormRepository) GetByBudgetAndType(ctx context.Context, budgetID string, t entities.PaymentType) (entities.Payment, error) {
	var m paymentModel
	err := conn(ctx, r.db).Where("budget_id = ? AND type = ?", budgetID, string(t)).First(&m).Error
	if isNotFound(err) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, translate(err, "get payment")
	}
	return fromPaymentModel(m), nil
}

func (r *PaymentGormRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := conn(ctx, r.db).Where("budget_id = ?", budgetID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, translate(err, "list payments")
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromPaymentModel(m))
	}
	return out, nil
}

func toPaymentModel(p entities.Payment) paymentModel {
	return paymentModel{
		ID:             p.ID,
		BudgetID:       p.BudgetID,
		Type:           string(p.Type),
		ProjectID:      p.ProjectID,
		Amount:         p.Amount,
		Status:         string(p.Status),
		PaymentLinkID:  p.PaymentLinkID,
		PaymentLinkURL: p.PaymentLinkURL,
		PaidAt:         p.PaidAt,
		DueDate:        p.DueDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func fromPaymentModel(m paymentModel) entities.Payment {
	return entities.Payment{
		ID:             m.ID,
		BudgetID:       m.BudgetID,
		Type:           entities.PaymentType(m.Type),
		ProjectID:      m.ProjectID,
		Amount:         m.Amount,
		Status:         entities.PaymentStatus(m.Status),
		PaymentLinkID:  m.PaymentLinkID,
		PaymentLinkURL: m.PaymentLinkURL,
		PaidAt:         m.PaidAt,
		DueDate:        m.DueDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
