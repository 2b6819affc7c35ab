package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"agency_backoffice/internal/adapter/http/handlers/mocks"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newBudgetRouter(uc usecase.IBudgetUseCase) *gin.Engine {
	h := NewBudgetHandler(uc)
	r := gin.New()
	r.POST("/v1/budgets", h.CreateBudget)
	r.GET("/v1/budgets", h.ListBudgets)
	r.GET("/v1/budgets/:id", h.GetBudget)
	r.PATCH("/v1/budgets/:id/final-value", h.UpdateFinalValue)
	r.POST("/v1/budgets/:id/send", h.SendBudget)
	r.POST("/v1/budgets/:id/approve", h.ApproveBudget)
	r.POST("/v1/budgets/:id/reject", h.RejectBudget)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl))

		w := perform(r, http.MethodPost, "/v1/budgets", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing estimates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBudgetRouter(mocks.NewMockIBudgetUseCase(ctrl))

		w := perform(r, http.MethodPost, "/v1/budgets", `{"clientName":"Maria","clientEmail":"maria@example.com","projectType":"Site"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newBudgetRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.CreateBudgetInput) (entities.Budget, error) {
			if in.ClientName != "Maria" || !in.EstimatedMax.Equal(decimal.NewFromInt(12000)) {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Budget{
				ID:           "b-1",
				ClientName:   in.ClientName,
				EstimatedMin: in.EstimatedMin,
				EstimatedMax: in.EstimatedMax,
				Status:       entities.BudgetStatusPending,
			}, nil
		})

		w := perform(r, http.MethodPost, "/v1/budgets", `{"clientName":"Maria","clientEmail":"maria@example.com","projectType":"Site","estimatedMin":8000,"estimatedMax":"12000"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "b-1" || body["status"] != "pending" || body["estimatedMax"] != "12000.00" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestBudgetHandler_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := newBudgetRouter(uc)

	uc.EXPECT().List(gomock.Any(), "sent").Return([]entities.Budget{{ID: "b-1"}, {ID: "b-2"}}, nil)
	uc.EXPECT().List(gomock.Any(), "bogus").Return(nil, fmt.Errorf("%w: unknown status", usecase.ErrInvalidBudgetInput))
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

	if w := perform(r, http.MethodGet, "/v1/budgets?status=sent", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(r, http.MethodGet, "/v1/budgets?status=bogus", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w := perform(r, http.MethodGet, "/v1/budgets/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	expectCode(t, w, "BUDGET_NOT_FOUND")
}

func TestBudgetHandler_UpdateFinalValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := newBudgetRouter(uc)

	uc.EXPECT().UpdateFinalValue(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(func(_ context.Context, id string, v decimal.Decimal) (entities.Budget, error) {
		if !v.Equal(decimal.RequireFromString("9500.5")) {
			t.Fatalf("unexpected value %s", v)
		}
		return entities.Budget{ID: id, FinalValue: &v}, nil
	})
	uc.EXPECT().UpdateFinalValue(gomock.Any(), "b-2", gomock.Any()).Return(entities.Budget{}, usecase.ErrFinalValueFrozen)

	if w := perform(r, http.MethodPatch, "/v1/budgets/b-1/final-value", `{"finalValue":9500.5}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w := perform(r, http.MethodPatch, "/v1/budgets/b-2/final-value", `{"finalValue":1}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	expectCode(t, w, "FINAL_VALUE_FROZEN")
	if w := perform(r, http.MethodPatch, "/v1/budgets/b-2/final-value", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestBudgetHandler_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	r := newBudgetRouter(uc)

	uc.EXPECT().Send(gomock.Any(), "b-1").Return(usecase.BudgetResult{
		Budget:      entities.Budget{ID: "b-1", Status: entities.BudgetStatusSent},
		SideEffects: usecase.SideEffects{EmailError: "smtp down"},
	}, nil)
	uc.EXPECT().Approve(gomock.Any(), "b-1").Return(usecase.BudgetResult{}, fmt.Errorf("%w: approve", policy.ErrInvalidTransition))
	uc.EXPECT().Reject(gomock.Any(), "b-1").Return(usecase.BudgetResult{}, errors.New("db down"))

	w := perform(r, http.MethodPost, "/v1/budgets/b-1/send", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["emailSent"] != false || body["emailError"] != "smtp down" {
		t.Fatalf("expected side effect flags, got %v", body)
	}

	w = perform(r, http.MethodPost, "/v1/budgets/b-1/approve", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	expectCode(t, w, "INVALID_TRANSITION")

	if w := perform(r, http.MethodPost, "/v1/budgets/b-1/reject", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
