package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/infrastructure/metrics"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultProjectDescription = "Projeto criado a partir de orçamento aprovado"
	autoDocumentType          = "AUTO"
)

// ConversionResult is returned by ConvertBudget and CompleteProject.
// Replayed is true when the event had already been applied and only missing
// links were filled in.
type ConversionResult struct {
	Project  entities.Project   `json:"project"`
	Payment  entities.Payment   `json:"payment"`
	Budget   entities.Budget    `json:"budget"`
	Client   *entities.Client   `json:"client,omitempty"`
	Contract *entities.Contract `json:"contract,omitempty"`
	Replayed bool               `json:"replayed"`
	SideEffects
}

type IConversionUseCase interface {
	ConvertBudget(ctx context.Context, budgetID string) (ConversionResult, error)
	CompleteProject(ctx context.Context, budgetID string) (ConversionResult, error)
}

// ConversionUseCase turns a budget with a confirmed down payment into a project
// and closes the project when the final payment is confirmed. Both operations
// are atomic and safe to run again for the same budget.
type ConversionUseCase struct {
	tx        interfaces.ITransactor
	budgets   interfaces.IBudgetRepository
	clients   interfaces.IClientRepository
	users     interfaces.IUserRepository
	projects  interfaces.IProjectRepository
	contracts interfaces.IContractRepository
	ledger    IPaymentUseCase
	dispatch  *Dispatcher
	log       *zap.Logger
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(
	tx interfaces.ITransactor,
	budgets interfaces.IBudgetRepository,
	clients interfaces.IClientRepository,
	users interfaces.IUserRepository,
	projects interfaces.IProjectRepository,
	contracts interfaces.IContractRepository,
	ledger IPaymentUseCase,
	dispatch *Dispatcher,
	log *zap.Logger,
) *ConversionUseCase {
	return &ConversionUseCase{
		tx:        tx,
		budgets:   budgets,
		clients:   clients,
		users:     users,
		projects:  projects,
		contracts: contracts,
		ledger:    ledger,
		dispatch:  dispatch,
		log:       log.Named("conversion.usecase"),
	}
}

func (u *ConversionUseCase) ConvertBudget(ctx context.Context, budgetID string) (ConversionResult, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return ConversionResult{}, ErrInvalidBudgetID
	}

	var res ConversionResult
	err := runWithRetry(ctx, u.tx, func(ctx context.Context) error {
		res = ConversionResult{}
		return u.convert(ctx, budgetID, &res)
	})
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		u.log.Error("conversion failed", zap.String("budget_id", budgetID), zap.Error(err))
		return ConversionResult{}, err
	}

	if res.Replayed {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeReplayed).Inc()
		u.log.Info("conversion replayed",
			zap.String("budget_id", budgetID),
			zap.String("project_id", res.Project.ID),
		)
		return res, nil
	}

	metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	u.log.Info("budget converted",
		zap.String("budget_id", budgetID),
		zap.String("project_id", res.Project.ID),
		zap.String("payment_id", res.Payment.ID),
	)

	u.dispatch.Email(ctx, &res.SideEffects, emailDownPaymentPaid, res.Budget.ClientEmail, emailData{
		ClientName:  res.Budget.ClientName,
		ProjectName: res.Project.Name,
		Amount:      res.Payment.Amount.StringFixed(2),
	})
	u.dispatch.Notify(ctx, &res.SideEffects, res.Project.CreatedByID, entities.Notification{
		Title:    "Novo projeto criado",
		Message:  fmt.Sprintf("A entrada de %s foi confirmada e o projeto %s foi criado.", res.Budget.ClientName, res.Project.Name),
		Type:     "success",
		Category: "project",
		Link:     "/projects/" + res.Project.ID,
		Metadata: map[string]string{"budget_id": budgetID, "project_id": res.Project.ID},
	})
	return res, nil
}

func (u *ConversionUseCase) convert(ctx context.Context, budgetID string, res *ConversionResult) error {
	b, err := u.loadBudget(ctx, budgetID)
	if err != nil {
		return err
	}
	project, err := u.findProject(ctx, b)
	if err != nil {
		return err
	}

	dec, err := policy.Decide(policy.EventDownPaymentConfirmed, policy.State{
		BudgetStatus:  b.Status,
		HasProject:    project.ID != "",
		ProjectStatus: project.Status,
	})
	if err != nil {
		return err
	}

	if dec.Replay {
		return u.replayDownPayment(ctx, b, project, res)
	}

	client, err := u.resolveClient(ctx, b)
	if err != nil {
		return err
	}
	creator, err := u.resolveCreator(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	due := entities.DueDateFor(now, b.Timeline)
	project, err = u.projects.Create(ctx, entities.Project{
		ID:          uuid.NewString(),
		BudgetID:    b.ID,
		Name:        fmt.Sprintf("%s - %s", b.ProjectType, b.ClientName),
		Description: projectDescription(b),
		Status:      dec.NextProjectStatus,
		Progress:    0,
		Complexity:  entities.NormalizeComplexity(b.Complexity),
		Timeline:    entities.NormalizeTimeline(b.Timeline),
		Budget:      *b.FinalValue,
		ClientID:    client.ID,
		ClientName:  client.Name,
		CreatedByID: creator,
		StartDate:   &now,
		DueDate:     &due,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return err
	}

	payment, err := u.ledger.UpsertPayment(ctx, UpsertPaymentInput{
		BudgetID:  b.ID,
		Type:      entities.PaymentTypeDownPayment,
		Amount:    entities.AmountFor(entities.PaymentTypeDownPayment, *b.FinalValue),
		ProjectID: &project.ID,
		Status:    entities.PaymentStatusPaid,
	})
	if err != nil {
		return err
	}

	linked, err := u.budgets.LinkProject(ctx, b.ID, project.ID, dec.NextBudgetStatus)
	if err != nil {
		return err
	}
	if !linked {
		return errLostRace
	}

	contract, err := u.signContract(ctx, b.ID, project.ID)
	if err != nil {
		return err
	}

	budget, err := u.budgets.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}

	res.Project = project
	res.Payment = payment
	res.Budget = budget
	res.Client = &client
	res.Contract = contract
	return nil
}

// replayDownPayment tops up a budget that already has its project: the paid
// down payment row, the budget link and the contract link. A budget still
// behind down_payment_paid is moved there; the project status is untouched.
func (u *ConversionUseCase) replayDownPayment(ctx context.Context, b entities.Budget, project entities.Project, res *ConversionResult) error {
	payment, err := u.ledger.UpsertPayment(ctx, UpsertPaymentInput{
		BudgetID:  b.ID,
		Type:      entities.PaymentTypeDownPayment,
		Amount:    entities.AmountFor(entities.PaymentTypeDownPayment, *b.FinalValue),
		ProjectID: &project.ID,
		Status:    entities.PaymentStatusPaid,
	})
	if err != nil {
		return err
	}

	next := b.Status
	if b.Status.CanTransitionTo(entities.BudgetStatusDownPaymentPaid) {
		next = entities.BudgetStatusDownPaymentPaid
	}
	if !b.HasProject() {
		linked, err := u.budgets.LinkProject(ctx, b.ID, project.ID, next)
		if err != nil {
			return err
		}
		if !linked {
			return errLostRace
		}
		if b, err = u.budgets.GetByID(ctx, b.ID); err != nil {
			return err
		}
	} else if b, err = transitionBudget(ctx, u.budgets, b, next); err != nil {
		if errors.Is(err, policy.ErrInvalidTransition) {
			return errLostRace
		}
		return err
	}

	contract, err := u.linkContract(ctx, b.ID, project.ID)
	if err != nil {
		return err
	}

	res.Project = project
	res.Payment = payment
	res.Budget = b
	res.Contract = contract
	res.Replayed = true
	if project.ClientID != "" {
		c, err := u.clients.GetByID(ctx, project.ClientID)
		if err != nil {
			return err
		}
		if c.ID != "" {
			res.Client = &c
		}
	}
	return nil
}

// CompleteProject applies a confirmed final payment: the paid final_payment row,
// the completed project and budget, and the signed contract.
func (u *ConversionUseCase) CompleteProject(ctx context.Context, budgetID string) (ConversionResult, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return ConversionResult{}, ErrInvalidBudgetID
	}

	var res ConversionResult
	err := runWithRetry(ctx, u.tx, func(ctx context.Context) error {
		res = ConversionResult{}
		return u.complete(ctx, budgetID, &res)
	})
	if err != nil {
		u.log.Error("project completion failed", zap.String("budget_id", budgetID), zap.Error(err))
		return ConversionResult{}, err
	}
	if res.Replayed {
		u.log.Info("project completion replayed", zap.String("budget_id", budgetID), zap.String("project_id", res.Project.ID))
		return res, nil
	}
	u.log.Info("project completed",
		zap.String("budget_id", budgetID),
		zap.String("project_id", res.Project.ID),
		zap.String("payment_id", res.Payment.ID),
	)

	u.dispatch.Email(ctx, &res.SideEffects, emailProjectCompleted, res.Budget.ClientEmail, emailData{
		ClientName:  res.Budget.ClientName,
		ProjectName: res.Project.Name,
		Amount:      res.Payment.Amount.StringFixed(2),
	})
	u.dispatch.Notify(ctx, &res.SideEffects, res.Project.CreatedByID, entities.Notification{
		Title:    "Projeto concluído",
		Message:  fmt.Sprintf("O pagamento final do projeto %s foi confirmado.", res.Project.Name),
		Type:     "success",
		Category: "payment",
		Link:     "/projects/" + res.Project.ID,
		Metadata: map[string]string{"budget_id": budgetID, "project_id": res.Project.ID},
	})
	return res, nil
}

func (u *ConversionUseCase) complete(ctx context.Context, budgetID string, res *ConversionResult) error {
	b, err := u.loadBudget(ctx, budgetID)
	if err != nil {
		return err
	}
	project, err := u.findProject(ctx, b)
	if err != nil {
		return err
	}

	dec, err := policy.Decide(policy.EventFinalPaymentConfirmed, policy.State{
		BudgetStatus:    b.Status,
		HasProject:      project.ID != "",
		ProjectStatus:   project.Status,
		ProjectProgress: project.Progress,
	})
	if err != nil {
		return err
	}

	payment, err := u.ledger.UpsertPayment(ctx, UpsertPaymentInput{
		BudgetID:  b.ID,
		Type:      entities.PaymentTypeFinalPayment,
		Amount:    entities.AmountFor(entities.PaymentTypeFinalPayment, finalValueOf(b, project)),
		ProjectID: &project.ID,
		Status:    entities.PaymentStatusPaid,
	})
	if err != nil {
		return err
	}

	if !dec.Replay {
		now := time.Now().UTC()
		ok, err := u.projects.TransitionStatus(ctx, project.ID, project.Status, dec.NextProjectStatus, dec.Progress, &now)
		if err != nil {
			return err
		}
		if !ok {
			return errLostRace
		}
		if project, err = u.projects.GetByID(ctx, project.ID); err != nil {
			return err
		}
	}

	if b.Status != dec.NextBudgetStatus && b.Status.CanTransitionTo(entities.BudgetStatusCompleted) {
		if b, err = transitionBudget(ctx, u.budgets, b, entities.BudgetStatusCompleted); err != nil {
			if errors.Is(err, policy.ErrInvalidTransition) {
				return errLostRace
			}
			return err
		}
	}

	contract, err := u.signContract(ctx, b.ID, project.ID)
	if err != nil {
		return err
	}

	res.Project = project
	res.Payment = payment
	res.Budget = b
	res.Contract = contract
	res.Replayed = dec.Replay
	return nil
}

func (u *ConversionUseCase) loadBudget(ctx context.Context, budgetID string) (entities.Budget, error) {
	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	if b.FinalValue == nil {
		return entities.Budget{}, ErrFinalValueRequired
	}
	return b, nil
}

// findProject follows budget.project_id and falls back to the unique budget_id
// index for a project whose budget link was never written.
func (u *ConversionUseCase) findProject(ctx context.Context, b entities.Budget) (entities.Project, error) {
	if b.HasProject() {
		p, err := u.projects.GetByID(ctx, *b.ProjectID)
		if err != nil || p.ID != "" {
			return p, err
		}
	}
	return u.projects.GetByBudgetID(ctx, b.ID)
}

func (u *ConversionUseCase) resolveClient(ctx context.Context, b entities.Budget) (entities.Client, error) {
	found, err := u.clients.FindByEmailOrName(ctx, b.ClientEmail, b.ClientName)
	if err != nil {
		return entities.Client{}, err
	}
	if found.ID != "" {
		return found, nil
	}

	now := time.Now().UTC()
	first, last := entities.SplitName(b.ClientName)
	c := entities.Client{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(b.ClientName),
		FirstName:    first,
		LastName:     last,
		DocumentType: autoDocumentType,
		Document:     autoDocument(now),
		Company:      b.Company,
		Emails:       singleContact(b.ClientEmail, "work"),
		Phones:       singleContact(b.ClientPhone, "mobile"),
		Status:       entities.ClientStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.clients.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	u.log.Info("client created from budget", zap.String("budget_id", b.ID), zap.String("client_id", created.ID))
	return created, nil
}

func (u *ConversionUseCase) resolveCreator(ctx context.Context) (*string, error) {
	admin, err := u.users.FirstByRole(ctx, entities.UserRoleAdmin)
	if err != nil {
		return nil, err
	}
	if admin.ID != "" {
		return &admin.ID, nil
	}
	anyone, err := u.users.First(ctx)
	if err != nil {
		return nil, err
	}
	if anyone.ID != "" {
		return &anyone.ID, nil
	}
	return nil, nil
}

// linkContract attaches the budget's contract to the project if it is not yet.
func (u *ConversionUseCase) linkContract(ctx context.Context, budgetID, projectID string) (*entities.Contract, error) {
	return u.updateContract(ctx, budgetID, func(c *entities.Contract) bool {
		if c.ProjectID != nil {
			return false
		}
		c.ProjectID = &projectID
		return true
	})
}

// signContract links the contract and marks it signed and confirmed.
func (u *ConversionUseCase) signContract(ctx context.Context, budgetID, projectID string) (*entities.Contract, error) {
	return u.updateContract(ctx, budgetID, func(c *entities.Contract) bool {
		changed := false
		if c.ProjectID == nil {
			c.ProjectID = &projectID
			changed = true
		}
		if c.Status != entities.ContractStatusSigned || !c.Confirmed {
			c.Status = entities.ContractStatusSigned
			c.Confirmed = true
			changed = true
		}
		if c.SignedAt == nil {
			now := time.Now().UTC()
			c.SignedAt = &now
			changed = true
		}
		return changed
	})
}

func (u *ConversionUseCase) updateContract(ctx context.Context, budgetID string, mutate func(c *entities.Contract) bool) (*entities.Contract, error) {
	c, err := u.contracts.GetByBudgetID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, nil
	}
	if !mutate(&c) {
		return &c, nil
	}
	updated, err := u.contracts.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func projectDescription(b entities.Budget) string {
	if d := strings.TrimSpace(b.Details); d != "" {
		return d
	}
	return defaultProjectDescription
}

// autoDocument is the placeholder document of a client created during conversion.
func autoDocument(now time.Time) string {
	return fmt.Sprintf("AUTO_%d_%06d", now.UnixMilli(), rand.IntN(1_000_000))
}

func singleContact(value, kind string) []entities.ContactEntry {
	value = strings.TrimSpace(value)
	if value == "" {
		return []entities.ContactEntry{}
	}
	return []entities.ContactEntry{{ID: uuid.NewString(), Value: value, Type: kind, IsPrimary: true}}
}
