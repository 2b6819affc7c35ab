package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"agency_backoffice/internal/adapter/http/handlers/mocks"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContractHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIContractUseCase(ctrl)
	h := NewContractHandler(uc)
	r := gin.New()
	r.POST("/v1/budgets/:id/contract", h.GenerateContract)
	r.GET("/v1/budgets/:id/contract", h.GetContract)
	r.POST("/v1/contracts/:id/sign", h.SignContract)

	uc.EXPECT().Generate(gomock.Any(), "b-1").Return(usecase.ContractResult{
		Contract: entities.Contract{ID: "ct-1", BudgetID: "b-1", Status: entities.ContractStatusSent},
		Budget:   entities.Budget{ID: "b-1", Status: entities.BudgetStatusContractSent},
	}, nil)
	uc.EXPECT().Generate(gomock.Any(), "b-2").Return(usecase.ContractResult{}, usecase.ErrContractExists)
	uc.EXPECT().GetByBudgetID(gomock.Any(), "b-3").Return(entities.Contract{}, usecase.ErrContractNotFound)
	uc.EXPECT().Sign(gomock.Any(), "ct-1").Return(usecase.ContractResult{
		Contract: entities.Contract{ID: "ct-1", Status: entities.ContractStatusSignedByClient},
	}, nil)
	uc.EXPECT().Sign(gomock.Any(), "ct-2").Return(usecase.ContractResult{}, fmt.Errorf("%w: contract_signed", policy.ErrInvalidTransition))

	w := perform(r, http.MethodPost, "/v1/budgets/b-1/contract", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["contract"].(map[string]any)["status"] != "sent" {
		t.Fatalf("unexpected body %v", body)
	}

	w = perform(r, http.MethodPost, "/v1/budgets/b-2/contract", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	expectCode(t, w, "CONTRACT_ALREADY_EXISTS")

	if w := perform(r, http.MethodGet, "/v1/budgets/b-3/contract", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := perform(r, http.MethodPost, "/v1/contracts/ct-1/sign", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(r, http.MethodPost, "/v1/contracts/ct-2/sign", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
