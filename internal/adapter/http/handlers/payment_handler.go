package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "agency_backoffice/internal/adapter/http/dto/response"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment ledger: links, manual confirmations and
// queries.
type PaymentHandler struct {
	payments   usecase.IPaymentUseCase
	conversion usecase.IConversionUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, conversion usecase.IConversionUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, conversion: conversion}
}

// ListPayments godoc
// @Summary      List payments of a budget
// @Tags         payments
// @Produce      json
// @Param        id    path      string  true   "Budget ID"
// @Param        type  query     string  false  "down_payment or final_payment"
// @Success      200   {array}   response.PaymentResponse
// @Security     BearerAuth
// @Router       /budgets/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	budgetID := c.Param("id")
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		p, err := h.payments.GetByBudgetAndType(c.Request.Context(), budgetID, entities.PaymentType(t))
		if err != nil {
			renderError(c, mapPaymentError(err))
			return
		}
		c.JSON(http.StatusOK, []response.PaymentResponse{response.FromPayment(p)})
		return
	}

	list, err := h.payments.ListByBudget(c.Request.Context(), budgetID)
	if err != nil {
		renderError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// CreateDownPaymentLink godoc
// @Summary      Create the 25% down payment link
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      201  {object}  response.PaymentLinkResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /budgets/{id}/down-payment/link [post]
func (h *PaymentHandler) CreateDownPaymentLink(c *gin.Context) {
	res, err := h.payments.GenerateDownPaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentLinkResult(res))
}

// CreateFinalPaymentLink godoc
// @Summary      Create the 75% final payment link
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      201  {object}  response.PaymentLinkResponse
// @Security     BearerAuth
// @Router       /projects/{id}/final-payment/link [post]
func (h *PaymentHandler) CreateFinalPaymentLink(c *gin.Context) {
	res, err := h.payments.GenerateFinalPaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentLinkResult(res))
}

// ConfirmDownPayment godoc
// @Summary      Confirm the down payment manually and convert the budget
// @Description  Idempotent: a budget that already has a project only gets its links topped up.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.ConversionResponse
// @Security     BearerAuth
// @Router       /budgets/{id}/down-payment/confirm [post]
func (h *PaymentHandler) ConfirmDownPayment(c *gin.Context) {
	res, err := h.conversion.ConvertBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConversionResult(res))
}

// ConfirmFinalPayment godoc
// @Summary      Confirm the final payment manually and complete the project
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.ConversionResponse
// @Security     BearerAuth
// @Router       /budgets/{id}/final-payment/confirm [post]
func (h *PaymentHandler) ConfirmFinalPayment(c *gin.Context) {
	res, err := h.conversion.CompleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConversionResult(res))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentType), errors.Is(err, usecase.ErrInvalidPaymentEvent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", err, http.StatusBadGateway)
	default:
		return mapCommonError(err)
	}
}
