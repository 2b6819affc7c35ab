package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var contractTemplate = template.Must(template.New("contract").Parse(`CONTRATO DE PRESTAÇÃO DE SERVIÇOS

CONTRATANTE: {{.ClientName}}{{if .Company}} ({{.Company}}){{end}}, e-mail {{.ClientEmail}}.

OBJETO: desenvolvimento de {{.ProjectType}} com complexidade {{.Complexity}} e prazo {{.Timeline}}.
{{- if .Details}}

ESCOPO: {{.Details}}
{{- end}}

VALOR: R$ {{.Total}}, pago em duas parcelas:
  1. Entrada de 25%: R$ {{.Down}}, na assinatura deste contrato.
  2. Saldo de 75%: R$ {{.Final}}, na conclusão do projeto.

Data: {{.Date}}
`))

type contractView struct {
	entities.Budget
	Total string
	Down  string
	Final string
	Date  string
}

// ContractResult is a contract after a status move plus its best-effort side effects.
type ContractResult struct {
	Contract entities.Contract `json:"contract"`
	Budget   entities.Budget   `json:"budget"`
	SideEffects
}

type IContractUseCase interface {
	Generate(ctx context.Context, budgetID string) (ContractResult, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.Contract, error)
	Sign(ctx context.Context, contractID string) (ContractResult, error)
}

type ContractUseCase struct {
	tx        interfaces.ITransactor
	contracts interfaces.IContractRepository
	budgets   interfaces.IBudgetRepository
	dispatch  *Dispatcher
	log       *zap.Logger
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(tx interfaces.ITransactor, contracts interfaces.IContractRepository, budgets interfaces.IBudgetRepository, dispatch *Dispatcher, log *zap.Logger) *ContractUseCase {
	return &ContractUseCase{
		tx:        tx,
		contracts: contracts,
		budgets:   budgets,
		dispatch:  dispatch,
		log:       log.Named("contract.usecase"),
	}
}

// Generate renders the contract of an accepted budget, stores it as sent and
// moves the budget to contract_sent.
func (u *ContractUseCase) Generate(ctx context.Context, budgetID string) (ContractResult, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return ContractResult{}, ErrInvalidBudgetID
	}

	var res ContractResult
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		b, err := u.budgets.GetByID(ctx, budgetID)
		if err != nil {
			return err
		}
		if b.ID == "" {
			return ErrBudgetNotFound
		}
		if b.FinalValue == nil {
			return ErrFinalValueRequired
		}
		existing, err := u.contracts.GetByBudgetID(ctx, budgetID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return ErrContractExists
		}
		dec, err := policy.Decide(policy.EventContractSent, policy.State{BudgetStatus: b.Status})
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		content, err := renderContract(b, now)
		if err != nil {
			return err
		}
		c, err := u.contracts.Create(ctx, entities.Contract{
			ID:        uuid.NewString(),
			BudgetID:  b.ID,
			Content:   content,
			Status:    entities.ContractStatusSent,
			SentAt:    &now,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		res.Contract = c
		res.Budget, err = transitionBudget(ctx, u.budgets, b, dec.NextBudgetStatus)
		return err
	})
	if err != nil {
		if isConflict(err) {
			return ContractResult{}, ErrContractExists
		}
		return ContractResult{}, err
	}
	u.log.Info("contract generated", zap.String("budget_id", budgetID), zap.String("contract_id", res.Contract.ID))

	u.dispatch.Email(ctx, &res.SideEffects, emailContract, res.Budget.ClientEmail, emailData{
		ClientName:  res.Budget.ClientName,
		ProjectType: res.Budget.ProjectType,
		Content:     res.Contract.Content,
		Link:        u.dispatch.URL("/contracts/" + res.Contract.ID),
	})
	return res, nil
}

func (u *ContractUseCase) GetByBudgetID(ctx context.Context, budgetID string) (entities.Contract, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Contract{}, ErrInvalidBudgetID
	}
	c, err := u.contracts.GetByBudgetID(ctx, budgetID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// Sign records the client's signature and moves the budget to contract_signed.
func (u *ContractUseCase) Sign(ctx context.Context, contractID string) (ContractResult, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return ContractResult{}, ErrContractNotFound
	}

	var res ContractResult
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := u.contracts.GetByID(ctx, contractID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrContractNotFound
		}
		b, err := u.budgets.GetByID(ctx, c.BudgetID)
		if err != nil {
			return err
		}
		if b.ID == "" {
			return ErrBudgetNotFound
		}
		dec, err := policy.Decide(policy.EventContractSigned, policy.State{BudgetStatus: b.Status})
		if err != nil {
			return err
		}

		if c.SignedAt == nil {
			now := time.Now().UTC()
			c.SignedAt = &now
		}
		c.Status = entities.ContractStatusSignedByClient
		if res.Contract, err = u.contracts.Update(ctx, c); err != nil {
			return err
		}
		res.Budget, err = transitionBudget(ctx, u.budgets, b, dec.NextBudgetStatus)
		return err
	})
	if err != nil {
		return ContractResult{}, err
	}
	u.log.Info("contract signed", zap.String("contract_id", contractID), zap.String("budget_id", res.Budget.ID))

	u.dispatch.Notify(ctx, &res.SideEffects, nil, entities.Notification{
		Title:    "Contrato assinado",
		Message:  fmt.Sprintf("%s assinou o contrato de %s.", res.Budget.ClientName, res.Budget.ProjectType),
		Type:     "success",
		Category: "contract",
		Link:     "/budgets/" + res.Budget.ID,
		Metadata: map[string]string{"budget_id": res.Budget.ID, "contract_id": contractID},
	})
	return res, nil
}

func renderContract(b entities.Budget, now time.Time) (string, error) {
	down, final := entities.SplitFinalValue(*b.FinalValue)
	var buf bytes.Buffer
	err := contractTemplate.Execute(&buf, contractView{
		Budget: b,
		Total:  b.FinalValue.StringFixed(2),
		Down:   down.StringFixed(2),
		Final:  final.StringFixed(2),
		Date:   now.Format("02/01/2006"),
	})
	if err != nil {
		return "", fmt.Errorf("render contract: %w", err)
	}
	return buf.String(), nil
}
