package response

import (
	"encoding/json"
	"testing"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	fv := decimal.NewFromInt(10000)
	pid := "p-1"
	b := entities.Budget{
		ID:           "b-1",
		ClientName:   "Maria",
		EstimatedMin: decimal.NewFromFloat(8000.5),
		EstimatedMax: decimal.NewFromInt(12000),
		FinalValue:   &fv,
		Status:       entities.BudgetStatusDownPaymentPaid,
		ProjectID:    &pid,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromBudget(b)
	if res.ID != "b-1" || res.Status != "down_payment_paid" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.EstimatedMin != "8000.50" || res.EstimatedMax != "12000.00" {
		t.Fatalf("unexpected estimates: %s %s", res.EstimatedMin, res.EstimatedMax)
	}
	if res.FinalValue == nil || *res.FinalValue != "10000.00" {
		t.Fatalf("unexpected final value: %v", res.FinalValue)
	}
	if res.ProjectID == nil || *res.ProjectID != "p-1" {
		t.Fatalf("unexpected project id: %v", res.ProjectID)
	}

	if FromBudget(entities.Budget{}).FinalValue != nil {
		t.Fatalf("expected nil final value")
	}
}

func TestFromConversionResult_JSON(t *testing.T) {
	r := usecase.ConversionResult{
		Project:  entities.Project{ID: "p-1", Budget: decimal.NewFromInt(10000)},
		Payment:  entities.Payment{ID: "pay-1", Type: entities.PaymentTypeDownPayment, Amount: decimal.NewFromInt(2500), Status: entities.PaymentStatusPaid},
		Budget:   entities.Budget{ID: "b-1"},
		Replayed: true,
		SideEffects: usecase.SideEffects{
			EmailError: "smtp down",
		},
	}

	raw, err := json.Marshal(FromConversionResult(r))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got["replayed"] != true || got["emailSent"] != false || got["emailError"] != "smtp down" {
		t.Fatalf("unexpected flags: %s", raw)
	}
	payment := got["payment"].(map[string]any)
	if payment["amount"] != "2500.00" || payment["type"] != "down_payment" {
		t.Fatalf("unexpected payment: %v", payment)
	}
	if _, ok := got["client"]; ok {
		t.Fatalf("client must be omitted when nil: %s", raw)
	}
}

func TestFromPaymentEventResult(t *testing.T) {
	ignored := FromPaymentEventResult(usecase.PaymentEventResult{Ignored: true, Reason: "not confirmed"})
	if !ignored.Ignored || ignored.Result != nil {
		t.Fatalf("unexpected %+v", ignored)
	}

	handled := FromPaymentEventResult(usecase.PaymentEventResult{Result: &usecase.ConversionResult{Project: entities.Project{ID: "p-1"}}})
	if handled.Result == nil || handled.Result.Project.ID != "p-1" {
		t.Fatalf("unexpected %+v", handled)
	}
}

func TestFromClient(t *testing.T) {
	c := entities.Client{
		ID:     "c-1",
		Name:   "Ana",
		Emails: []entities.ContactEntry{{ID: "e1", Value: "a@b.c", IsPrimary: true}},
	}
	res := FromClient(c)
	if res.PrimaryEmail != "a@b.c" || len(res.Emails) != 1 || res.Phones == nil {
		t.Fatalf("unexpected %+v", res)
	}
}
