package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var validate = validator.New()

type CreateBudgetInput struct {
	ClientName   string
	ClientEmail  string
	ClientPhone  string
	Company      string
	ProjectType  string
	Complexity   string
	Timeline     string
	Details      string
	EstimatedMin decimal.Decimal
	EstimatedMax decimal.Decimal
	FinalValue   *decimal.Decimal
}

// BudgetResult is a budget after a status move plus its best-effort side effects.
type BudgetResult struct {
	Budget entities.Budget `json:"budget"`
	SideEffects
}

// IBudgetUseCase exposes the proposal half of the budget lifecycle.
//
//   - Send        => pending -> sent, proposal email
//   - Approve     => pending|sent -> accepted, final value frozen
//   - Reject      => pending|sent -> rejected
type IBudgetUseCase interface {
	Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, status string) ([]entities.Budget, error)
	UpdateFinalValue(ctx context.Context, id string, value decimal.Decimal) (entities.Budget, error)
	Send(ctx context.Context, id string) (BudgetResult, error)
	Approve(ctx context.Context, id string) (BudgetResult, error)
	Reject(ctx context.Context, id string) (BudgetResult, error)
}

type BudgetUseCase struct {
	tx       interfaces.ITransactor
	repo     interfaces.IBudgetRepository
	dispatch *Dispatcher
	log      *zap.Logger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(tx interfaces.ITransactor, repo interfaces.IBudgetRepository, dispatch *Dispatcher, log *zap.Logger) *BudgetUseCase {
	return &BudgetUseCase{tx: tx, repo: repo, dispatch: dispatch, log: log.Named("budget.usecase")}
}

func (u *BudgetUseCase) Create(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.ToLower(strings.TrimSpace(in.ClientEmail))
	in.ProjectType = strings.TrimSpace(in.ProjectType)
	if in.ClientName == "" || in.ProjectType == "" {
		return entities.Budget{}, fmt.Errorf("%w: client name and project type are required", ErrInvalidBudgetInput)
	}
	if err := validate.Var(in.ClientEmail, "required,email"); err != nil {
		return entities.Budget{}, fmt.Errorf("%w: invalid client email", ErrInvalidBudgetInput)
	}
	if in.EstimatedMin.IsNegative() || in.EstimatedMax.LessThan(in.EstimatedMin) {
		return entities.Budget{}, fmt.Errorf("%w: estimated range", ErrInvalidBudgetInput)
	}
	if in.FinalValue != nil && !in.FinalValue.IsPositive() {
		return entities.Budget{}, ErrInvalidFinalValue
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:           uuid.NewString(),
		ClientName:   in.ClientName,
		ClientEmail:  in.ClientEmail,
		ClientPhone:  strings.TrimSpace(in.ClientPhone),
		Company:      strings.TrimSpace(in.Company),
		ProjectType:  in.ProjectType,
		Complexity:   entities.NormalizeComplexity(in.Complexity),
		Timeline:     entities.NormalizeTimeline(in.Timeline),
		Details:      strings.TrimSpace(in.Details),
		EstimatedMin: in.EstimatedMin.Round(2),
		EstimatedMax: in.EstimatedMax.Round(2),
		Status:       entities.BudgetStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.FinalValue != nil {
		v := in.FinalValue.Round(2)
		b.FinalValue = &v
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	u.log.Info("budget created", zap.String("budget_id", created.ID), zap.String("project_type", created.ProjectType))
	return created, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// List filters by status when status is not empty.
func (u *BudgetUseCase) List(ctx context.Context, status string) ([]entities.Budget, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return u.repo.List(ctx, nil)
	}
	st, ok := entities.ParseBudgetStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidBudgetInput, status)
	}
	return u.repo.List(ctx, &st)
}

// UpdateFinalValue is only allowed before the client accepts the proposal.
func (u *BudgetUseCase) UpdateFinalValue(ctx context.Context, id string, value decimal.Decimal) (entities.Budget, error) {
	if !value.IsPositive() {
		return entities.Budget{}, ErrInvalidFinalValue
	}
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status.IsAcceptedOrLater() || b.Status.IsTerminal() {
		return entities.Budget{}, ErrFinalValueFrozen
	}

	v := value.Round(2)
	b.FinalValue = &v
	updated, err := u.repo.UpdateFinalValue(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrFinalValueFrozen
	}
	u.log.Info("budget final value updated", zap.String("budget_id", id), zap.String("final_value", v.StringFixed(2)))
	return updated, nil
}

func (u *BudgetUseCase) Send(ctx context.Context, id string) (BudgetResult, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return BudgetResult{}, err
	}
	dec, err := policy.Decide(policy.EventProposalSent, policy.State{BudgetStatus: b.Status})
	if err != nil {
		return BudgetResult{}, err
	}
	b, err = transitionBudget(ctx, u.repo, b, dec.NextBudgetStatus)
	if err != nil {
		return BudgetResult{}, err
	}
	u.log.Info("proposal sent", zap.String("budget_id", b.ID))

	res := BudgetResult{Budget: b}
	u.dispatch.Email(ctx, &res.SideEffects, emailProposal, b.ClientEmail, emailData{
		ClientName:  b.ClientName,
		ProjectType: b.ProjectType,
		Amount:      proposalAmount(b),
		Link:        u.dispatch.URL("/budgets/" + b.ID),
	})
	return res, nil
}

// Approve accepts the proposal and freezes the final value. A budget without
// a final value takes its estimated maximum.
func (u *BudgetUseCase) Approve(ctx context.Context, id string) (BudgetResult, error) {
	var res BudgetResult
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		b, err := u.GetByID(ctx, id)
		if err != nil {
			return err
		}
		dec, err := policy.Decide(policy.EventProposalApproved, policy.State{BudgetStatus: b.Status})
		if err != nil {
			return err
		}
		if b.FinalValue == nil {
			if !b.EstimatedMax.IsPositive() {
				return ErrFinalValueRequired
			}
			v := b.EstimatedMax
			b.FinalValue = &v
			if b, err = u.repo.UpdateFinalValue(ctx, b); err != nil {
				return err
			}
			if b.ID == "" {
				return fmt.Errorf("%w: budget %s changed concurrently", policy.ErrInvalidTransition, id)
			}
		}
		res.Budget, err = transitionBudget(ctx, u.repo, b, dec.NextBudgetStatus)
		return err
	})
	if err != nil {
		return BudgetResult{}, err
	}
	u.log.Info("proposal approved",
		zap.String("budget_id", res.Budget.ID),
		zap.String("final_value", res.Budget.FinalValue.StringFixed(2)),
	)

	u.dispatch.Notify(ctx, &res.SideEffects, nil, entities.Notification{
		Title:    "Proposta aprovada",
		Message:  fmt.Sprintf("%s aprovou a proposta de %s.", res.Budget.ClientName, res.Budget.ProjectType),
		Type:     "success",
		Category: "budget",
		Link:     "/budgets/" + res.Budget.ID,
		Metadata: map[string]string{"budget_id": res.Budget.ID},
	})
	return res, nil
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (BudgetResult, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return BudgetResult{}, err
	}
	dec, err := policy.Decide(policy.EventProposalRejected, policy.State{BudgetStatus: b.Status})
	if err != nil {
		return BudgetResult{}, err
	}
	b, err = transitionBudget(ctx, u.repo, b, dec.NextBudgetStatus)
	if err != nil {
		return BudgetResult{}, err
	}
	u.log.Info("proposal rejected", zap.String("budget_id", b.ID))

	res := BudgetResult{Budget: b}
	u.dispatch.Notify(ctx, &res.SideEffects, nil, entities.Notification{
		Title:    "Proposta recusada",
		Message:  fmt.Sprintf("%s recusou a proposta de %s.", b.ClientName, b.ProjectType),
		Type:     "warning",
		Category: "budget",
		Link:     "/budgets/" + b.ID,
		Metadata: map[string]string{"budget_id": b.ID},
	})
	return res, nil
}

func proposalAmount(b entities.Budget) string {
	if b.FinalValue != nil {
		return b.FinalValue.StringFixed(2)
	}
	return b.EstimatedMin.StringFixed(2) + " - " + b.EstimatedMax.StringFixed(2)
}
