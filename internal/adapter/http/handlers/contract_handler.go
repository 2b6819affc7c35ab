package handlers

import (
	"errors"
	"net/http"

	response "agency_backoffice/internal/adapter/http/dto/response"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// GenerateContract godoc
// @Summary      Generate and send the contract of an accepted budget
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      201  {object}  response.ContractResultResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /budgets/{id}/contract [post]
func (h *ContractHandler) GenerateContract(c *gin.Context) {
	res, err := h.usecase.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromContractResult(res))
}

// GetContract godoc
// @Summary      Get the contract of a budget
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.ContractResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /budgets/{id}/contract [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	ct, err := h.usecase.GetByBudgetID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContract(ct))
}

// SignContract godoc
// @Summary      Client signs the contract
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  response.ContractResultResponse
// @Router       /contracts/{id}/sign [post]
func (h *ContractHandler) SignContract(c *gin.Context) {
	res, err := h.usecase.Sign(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContractResult(res))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractExists):
		return pkg.NewDomainErrorSimple("CONTRACT_ALREADY_EXISTS", "Contract already generated for this budget", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
