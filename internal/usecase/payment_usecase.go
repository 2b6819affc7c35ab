package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/infrastructure/metrics"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// paymentDueIn is the due date given to newly created ledger rows.
const paymentDueIn = 5 * 24 * time.Hour

// UpsertPaymentInput addresses a ledger row by (BudgetID, Type).
type UpsertPaymentInput struct {
	BudgetID  string
	Type      entities.PaymentType
	Amount    decimal.Decimal
	ProjectID *string
	Status    entities.PaymentStatus
	LinkID    string
	LinkURL   string
	// DueDate is used only when the row is created.
	DueDate time.Time
}

type PaymentLinkResult struct {
	Payment entities.Payment  `json:"payment"`
	Budget  entities.Budget   `json:"budget"`
	Project *entities.Project `json:"project,omitempty"`
	SideEffects
}

// IPaymentUseCase is the payment ledger: at most one row per (budget, type),
// amounts derived from the 25/75 split of the budget's final value.
type IPaymentUseCase interface {
	UpsertPayment(ctx context.Context, in UpsertPaymentInput) (entities.Payment, error)
	GenerateDownPaymentLink(ctx context.Context, budgetID string) (PaymentLinkResult, error)
	GenerateFinalPaymentLink(ctx context.Context, projectID string) (PaymentLinkResult, error)
	ListByBudget(ctx context.Context, budgetID string) ([]entities.Payment, error)
	GetByBudgetAndType(ctx context.Context, budgetID string, t entities.PaymentType) (entities.Payment, error)
}

type PaymentUseCase struct {
	tx       interfaces.ITransactor
	payments interfaces.IPaymentRepository
	budgets  interfaces.IBudgetRepository
	projects interfaces.IProjectRepository
	gateway  interfaces.IPaymentGateway
	dispatch *Dispatcher
	log      *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	tx interfaces.ITransactor,
	payments interfaces.IPaymentRepository,
	budgets interfaces.IBudgetRepository,
	projects interfaces.IProjectRepository,
	gateway interfaces.IPaymentGateway,
	dispatch *Dispatcher,
	log *zap.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		tx:       tx,
		payments: payments,
		budgets:  budgets,
		projects: projects,
		gateway:  gateway,
		dispatch: dispatch,
		log:      log.Named("payment.usecase"),
	}
}

// UpsertPayment updates the (budget, type) row or creates it. A paid row stays
// paid and keeps its amount; projectId is only filled, never reassigned.
//
// A concurrent create surfaces as interfaces.ErrDuplicateKey; callers running
// inside a transaction retry the whole transaction.
func (u *PaymentUseCase) UpsertPayment(ctx context.Context, in UpsertPaymentInput) (entities.Payment, error) {
	in.BudgetID = strings.TrimSpace(in.BudgetID)
	if in.BudgetID == "" {
		return entities.Payment{}, ErrInvalidBudgetID
	}
	if !in.Type.Valid() {
		return entities.Payment{}, ErrInvalidPaymentType
	}
	if in.Status == "" {
		in.Status = entities.PaymentStatusPending
	}

	existing, err := u.payments.GetByBudgetAndType(ctx, in.BudgetID, in.Type)
	if err != nil {
		return entities.Payment{}, err
	}

	now := time.Now().UTC()
	if existing.ID == "" {
		p := entities.Payment{
			ID:             uuid.NewString(),
			BudgetID:       in.BudgetID,
			ProjectID:      in.ProjectID,
			Type:           in.Type,
			Amount:         in.Amount.Round(2),
			Status:         in.Status,
			DueDate:        in.DueDate,
			PaymentLinkID:  in.LinkID,
			PaymentLinkURL: in.LinkURL,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if p.DueDate.IsZero() {
			p.DueDate = now.Add(paymentDueIn)
		}
		if p.Status == entities.PaymentStatusPaid {
			p.PaidAt = &now
		}
		created, err := u.payments.Create(ctx, p)
		if err != nil {
			return entities.Payment{}, err
		}
		u.log.Info("payment created",
			zap.String("budget_id", created.BudgetID),
			zap.String("payment_id", created.ID),
			zap.String("type", string(created.Type)),
			zap.String("status", string(created.Status)),
			zap.String("amount", created.Amount.StringFixed(2)),
		)
		return created, nil
	}

	updated, err := u.payments.Update(ctx, mergePayment(existing, in, now))
	if err != nil {
		return entities.Payment{}, err
	}
	u.log.Info("payment updated",
		zap.String("budget_id", updated.BudgetID),
		zap.String("payment_id", updated.ID),
		zap.String("type", string(updated.Type)),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

func mergePayment(p entities.Payment, in UpsertPaymentInput, now time.Time) entities.Payment {
	if p.Status != entities.PaymentStatusPaid {
		p.Amount = in.Amount.Round(2)
	}
	if in.ProjectID != nil && p.ProjectID == nil {
		p.ProjectID = in.ProjectID
	}
	if in.LinkID != "" {
		p.PaymentLinkID = in.LinkID
		p.PaymentLinkURL = in.LinkURL
	}
	if in.Status == entities.PaymentStatusPaid && p.Status != entities.PaymentStatusPaid {
		p.Status = entities.PaymentStatusPaid
		p.PaidAt = &now
	}
	return p
}

func (u *PaymentUseCase) GenerateDownPaymentLink(ctx context.Context, budgetID string) (PaymentLinkResult, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return PaymentLinkResult{}, ErrInvalidBudgetID
	}
	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return PaymentLinkResult{}, err
	}
	if b.ID == "" {
		return PaymentLinkResult{}, ErrBudgetNotFound
	}
	if b.FinalValue == nil {
		return PaymentLinkResult{}, ErrFinalValueRequired
	}

	dec, err := policy.Decide(policy.EventDownPaymentLinkCreated, policy.State{BudgetStatus: b.Status, HasProject: b.HasProject()})
	if err != nil {
		return PaymentLinkResult{}, err
	}

	amount := entities.AmountFor(entities.PaymentTypeDownPayment, *b.FinalValue)
	link, err := u.createLink(ctx, interfaces.PaymentLinkRequest{
		Amount:      amount,
		Description: fmt.Sprintf("Entrada (25%%) - %s", b.ProjectType),
		PayerEmail:  b.ClientEmail,
		Metadata:    paymentMetadata(b.ID, entities.PaymentTypeDownPayment),
	})
	if err != nil {
		return PaymentLinkResult{}, err
	}

	var res PaymentLinkResult
	err = runWithRetry(ctx, u.tx, func(ctx context.Context) error {
		p, err := u.UpsertPayment(ctx, UpsertPaymentInput{
			BudgetID: b.ID,
			Type:     entities.PaymentTypeDownPayment,
			Amount:   amount,
			Status:   entities.PaymentStatusPending,
			LinkID:   link.ID,
			LinkURL:  link.URL,
		})
		if err != nil {
			return err
		}
		res.Payment = p
		res.Budget, err = u.applyBudgetMove(ctx, b, dec.NextBudgetStatus)
		return err
	})
	if err != nil {
		u.log.Error("down payment link persist failed", zap.String("budget_id", b.ID), zap.Error(err))
		return PaymentLinkResult{}, err
	}
	metrics.PaymentLinksTotal.WithLabelValues(string(entities.PaymentTypeDownPayment)).Inc()
	u.log.Info("down payment link generated", zap.String("budget_id", b.ID), zap.String("link_id", link.ID))

	u.dispatch.Email(ctx, &res.SideEffects, emailDownPaymentLink, b.ClientEmail, emailData{
		ClientName:  b.ClientName,
		ProjectType: b.ProjectType,
		Amount:      amount.StringFixed(2),
		Link:        link.URL,
	})
	return res, nil
}

func (u *PaymentUseCase) GenerateFinalPaymentLink(ctx context.Context, projectID string) (PaymentLinkResult, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return PaymentLinkResult{}, ErrInvalidProjectID
	}
	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return PaymentLinkResult{}, err
	}
	if project.ID == "" {
		return PaymentLinkResult{}, ErrProjectNotFound
	}
	b, err := u.budgets.GetByID(ctx, project.BudgetID)
	if err != nil {
		return PaymentLinkResult{}, err
	}
	if b.ID == "" {
		return PaymentLinkResult{}, ErrBudgetNotFound
	}

	dec, err := policy.Decide(policy.EventFinalPaymentLinkCreated, policy.State{
		BudgetStatus:    b.Status,
		HasProject:      true,
		ProjectStatus:   project.Status,
		ProjectProgress: project.Progress,
	})
	if err != nil {
		return PaymentLinkResult{}, err
	}

	amount := entities.AmountFor(entities.PaymentTypeFinalPayment, finalValueOf(b, project))
	link, err := u.createLink(ctx, interfaces.PaymentLinkRequest{
		Amount:      amount,
		Description: fmt.Sprintf("Pagamento final (75%%) - %s", project.Name),
		PayerEmail:  b.ClientEmail,
		Metadata:    paymentMetadata(b.ID, entities.PaymentTypeFinalPayment),
	})
	if err != nil {
		return PaymentLinkResult{}, err
	}

	var res PaymentLinkResult
	err = runWithRetry(ctx, u.tx, func(ctx context.Context) error {
		p, err := u.UpsertPayment(ctx, UpsertPaymentInput{
			BudgetID:  b.ID,
			Type:      entities.PaymentTypeFinalPayment,
			Amount:    amount,
			ProjectID: &project.ID,
			Status:    entities.PaymentStatusPending,
			LinkID:    link.ID,
			LinkURL:   link.URL,
		})
		if err != nil {
			return err
		}
		res.Payment = p

		if dec.NextProjectStatus != "" && dec.NextProjectStatus != project.Status {
			ok, err := u.projects.TransitionStatus(ctx, project.ID, project.Status, dec.NextProjectStatus, project.Progress, nil)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: project %s changed concurrently", policy.ErrInvalidTransition, project.ID)
			}
		}
		refreshed, err := u.projects.GetByID(ctx, project.ID)
		if err != nil {
			return err
		}
		res.Project = &refreshed

		res.Budget, err = u.applyBudgetMove(ctx, b, dec.NextBudgetStatus)
		return err
	})
	if err != nil {
		u.log.Error("final payment link persist failed", zap.String("project_id", project.ID), zap.Error(err))
		return PaymentLinkResult{}, err
	}
	metrics.PaymentLinksTotal.WithLabelValues(string(entities.PaymentTypeFinalPayment)).Inc()
	u.log.Info("final payment link generated", zap.String("project_id", project.ID), zap.String("link_id", link.ID))

	u.dispatch.Email(ctx, &res.SideEffects, emailFinalPaymentLink, b.ClientEmail, emailData{
		ClientName:  b.ClientName,
		ProjectName: project.Name,
		Amount:      amount.StringFixed(2),
		Link:        link.URL,
	})
	return res, nil
}

func (u *PaymentUseCase) ListByBudget(ctx context.Context, budgetID string) ([]entities.Payment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidBudgetID
	}
	return u.payments.ListByBudgetID(ctx, budgetID)
}

func (u *PaymentUseCase) GetByBudgetAndType(ctx context.Context, budgetID string, t entities.PaymentType) (entities.Payment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Payment{}, ErrInvalidBudgetID
	}
	if !t.Valid() {
		return entities.Payment{}, ErrInvalidPaymentType
	}
	p, err := u.payments.GetByBudgetAndType(ctx, budgetID, t)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) createLink(ctx context.Context, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
	if u.gateway == nil {
		return interfaces.PaymentLink{}, ErrPaymentGatewayNotConfigured
	}
	link, err := u.gateway.CreatePaymentLink(ctx, req)
	if err != nil {
		u.log.Error("payment gateway failed", zap.String("budget_id", req.Metadata["budget_id"]), zap.Error(err))
		return interfaces.PaymentLink{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	return link, nil
}

// applyBudgetMove applies a policy move with a compare-and-swap on the status
// the decision was made from. An empty next status leaves the budget as is.
func (u *PaymentUseCase) applyBudgetMove(ctx context.Context, b entities.Budget, next entities.BudgetStatus) (entities.Budget, error) {
	return transitionBudget(ctx, u.budgets, b, next)
}

func transitionBudget(ctx context.Context, budgets interfaces.IBudgetRepository, b entities.Budget, next entities.BudgetStatus) (entities.Budget, error) {
	if next == "" || next == b.Status {
		return b, nil
	}
	ok, err := budgets.TransitionStatus(ctx, b.ID, b.Status, next)
	if err != nil {
		return entities.Budget{}, err
	}
	current, err := budgets.GetByID(ctx, b.ID)
	if err != nil {
		return entities.Budget{}, err
	}
	// A concurrent writer that already made the same move is not a conflict.
	if !ok && current.Status != next {
		return entities.Budget{}, fmt.Errorf("%w: budget %s changed concurrently", policy.ErrInvalidTransition, b.ID)
	}
	return current, nil
}

// finalValueOf prefers the budget's frozen final value and falls back to the
// value copied onto the project.
func finalValueOf(b entities.Budget, p entities.Project) decimal.Decimal {
	if b.FinalValue != nil {
		return *b.FinalValue
	}
	return p.Budget
}

func paymentMetadata(budgetID string, t entities.PaymentType) map[string]string {
	return map[string]string{
		"budget_id":    budgetID,
		"payment_type": string(t),
	}
}
