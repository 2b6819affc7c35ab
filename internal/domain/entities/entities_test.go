package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBudgetStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from BudgetStatus
		to   BudgetStatus
		want bool
	}{
		{BudgetStatusPending, BudgetStatusSent, true},
		{BudgetStatusPending, BudgetStatusRejected, true},
		{BudgetStatusSent, BudgetStatusRejected, true},
		{BudgetStatusAccepted, BudgetStatusRejected, false},
		{BudgetStatusAccepted, BudgetStatusDownPaymentPaid, true},
		{BudgetStatusDownPaymentPaid, BudgetStatusAccepted, false},
		{BudgetStatusRejected, BudgetStatusAccepted, false},
		{BudgetStatusCompleted, BudgetStatusPending, false},
		{BudgetStatusFinalPaymentSent, BudgetStatusCompleted, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestParseBudgetStatus(t *testing.T) {
	if _, ok := ParseBudgetStatus("completed"); !ok {
		t.Fatalf("completed should parse")
	}
	if _, ok := ParseBudgetStatus("down_payment_sent"); !ok {
		t.Fatalf("down_payment_sent should parse")
	}
	if _, ok := ParseBudgetStatus("approved"); ok {
		t.Fatalf("approved is not a budget status")
	}
}

func TestProjectStatus_NoBackwardMoves(t *testing.T) {
	if ProjectStatusDevelopment70.CanTransitionTo(ProjectStatusDevelopment50) {
		t.Fatalf("development_70 must not go back to development_50")
	}
	if !ProjectStatusPlanning.CanTransitionTo(ProjectStatusDevelopment100) {
		t.Fatalf("planning should be able to jump to development_100")
	}
	if ProjectStatusCompleted.CanTransitionTo(ProjectStatusWaitingFinalPayment) {
		t.Fatalf("completed is terminal")
	}
}

func TestDevelopmentStatus(t *testing.T) {
	st, err := DevelopmentStatus(50)
	if err != nil || st != ProjectStatusDevelopment50 {
		t.Fatalf("expected development_50, got %q err=%v", st, err)
	}
	if _, err := DevelopmentStatus(60); err == nil {
		t.Fatalf("expected error for 60")
	}
}

func TestSplitFinalValue(t *testing.T) {
	down, final := SplitFinalValue(decimal.NewFromInt(10000))
	if down.StringFixed(2) != "2500.00" || final.StringFixed(2) != "7500.00" {
		t.Fatalf("unexpected split %s/%s", down, final)
	}

	down, final = SplitFinalValue(decimal.RequireFromString("999.99"))
	if !down.Add(final).Equal(decimal.RequireFromString("999.99")) {
		t.Fatalf("split must sum to the final value, got %s + %s", down, final)
	}
	if down.StringFixed(2) != "250.00" {
		t.Fatalf("unexpected rounded down payment %s", down)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Maria", "Maria", "Cliente"},
		{"Maria Silva Santos", "Maria", "Silva Santos"},
		{"  Ana   Lima ", "Ana", "Lima"},
	}
	for _, tc := range cases {
		first, last := SplitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("SplitName(%q) = %q/%q, want %q/%q", tc.in, first, last, tc.first, tc.last)
		}
	}
}

func TestHasSinglePrimary(t *testing.T) {
	if !HasSinglePrimary(nil) {
		t.Fatalf("empty list is valid")
	}
	if HasSinglePrimary([]ContactEntry{{Value: "a"}, {Value: "b"}}) {
		t.Fatalf("list without primary is invalid")
	}
	if HasSinglePrimary([]ContactEntry{{Value: "a", IsPrimary: true}, {Value: "b", IsPrimary: true}}) {
		t.Fatalf("two primaries is invalid")
	}
}

func TestNormalize(t *testing.T) {
	if NormalizeComplexity("Simples") != "simple" {
		t.Fatalf("simples should map to simple")
	}
	if NormalizeComplexity("whatever") != DefaultComplexity {
		t.Fatalf("unknown complexity should default")
	}
	if NormalizeTimeline("urgente") != "urgent" {
		t.Fatalf("urgente should map to urgent")
	}
	if NormalizeTimeline("") != DefaultTimeline {
		t.Fatalf("empty timeline should default")
	}

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := DueDateFor(start, "urgente"); !got.Equal(start.Add(15 * 24 * time.Hour)) {
		t.Fatalf("unexpected due date %v", got)
	}
}
