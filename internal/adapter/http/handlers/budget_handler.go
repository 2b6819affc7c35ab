package handlers

import (
	"context"
	"errors"
	"net/http"

	request "agency_backoffice/internal/adapter/http/dto/request"
	response "agency_backoffice/internal/adapter/http/dto/response"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetHandler serves the proposal half of the budget lifecycle.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary      Create a budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateBudgetRequest  true  "Quote request"
// @Success      201   {object}  response.BudgetResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

// ListBudgets godoc
// @Summary      List budgets
// @Tags         budgets
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   response.BudgetResponse
// @Security     BearerAuth
// @Router       /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		renderError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(list))
}

// GetBudget godoc
// @Summary      Get a budget
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// UpdateFinalValue godoc
// @Summary      Set the negotiated final value
// @Description  Rejected with 409 once the budget has been accepted.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Budget ID"
// @Param        body  body      request.UpdateFinalValueRequest  true  "Final value"
// @Success      200   {object}  response.BudgetResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /budgets/{id}/final-value [patch]
func (h *BudgetHandler) UpdateFinalValue(c *gin.Context) {
	var payload request.UpdateFinalValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	b, err := h.usecase.UpdateFinalValue(c.Request.Context(), c.Param("id"), *payload.FinalValue)
	if err != nil {
		renderError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// SendBudget godoc
// @Summary      Send the proposal to the client
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.BudgetResultResponse
// @Security     BearerAuth
// @Router       /budgets/{id}/send [post]
func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

// ApproveBudget godoc
// @Summary      Client approves the proposal
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.BudgetResultResponse
// @Router       /budgets/{id}/approve [post]
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

// RejectBudget godoc
// @Summary      Client rejects the proposal
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.BudgetResultResponse
// @Router       /budgets/{id}/reject [post]
func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

func (h *BudgetHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (usecase.BudgetResult, error)) {
	res, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetResult(res))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetInput):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFinalValue):
		return pkg.NewDomainErrorSimple("INVALID_FINAL_VALUE", "Final value must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinalValueFrozen):
		return pkg.NewDomainErrorSimple("FINAL_VALUE_FROZEN", "Final value cannot change after acceptance", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
