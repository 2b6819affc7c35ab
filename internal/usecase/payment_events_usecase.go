package usecase

import (
	"context"
	"fmt"
	"strings"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/infrastructure/metrics"
	"agency_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	EventSourceWebhook     = "webhook"
	EventSourceMercadoPago = "mercadopago"
	EventSourceKafka       = "kafka"
)

// PaymentEvent is a payment confirmation, whatever transport delivered it.
type PaymentEvent struct {
	BudgetID  string               `json:"budgetId"`
	Type      entities.PaymentType `json:"type"`
	Confirmed bool                 `json:"confirmed"`
	Source    string               `json:"-"`
}

// PaymentEventResult reports what Handle did. Ignored events carry no result.
type PaymentEventResult struct {
	Ignored bool              `json:"ignored"`
	Reason  string            `json:"reason,omitempty"`
	Result  *ConversionResult `json:"result,omitempty"`
}

type IPaymentEventsUseCase interface {
	Handle(ctx context.Context, ev PaymentEvent) (PaymentEventResult, error)
	HandleProviderNotification(ctx context.Context, providerPaymentID string) (PaymentEventResult, error)
}

// PaymentEventsUseCase routes confirmed payments to the conversion orchestrator.
type PaymentEventsUseCase struct {
	conversion IConversionUseCase
	gateway    interfaces.IPaymentGateway
	log        *zap.Logger
}

var _ IPaymentEventsUseCase = (*PaymentEventsUseCase)(nil)

func NewPaymentEventsUseCase(conversion IConversionUseCase, gateway interfaces.IPaymentGateway, log *zap.Logger) *PaymentEventsUseCase {
	return &PaymentEventsUseCase{
		conversion: conversion,
		gateway:    gateway,
		log:        log.Named("payment_events.usecase"),
	}
}

func (u *PaymentEventsUseCase) Handle(ctx context.Context, ev PaymentEvent) (PaymentEventResult, error) {
	ev.BudgetID = strings.TrimSpace(ev.BudgetID)
	if ev.Source == "" {
		ev.Source = EventSourceWebhook
	}
	if ev.BudgetID == "" {
		u.count(ev, metrics.OutcomeFailed)
		return PaymentEventResult{}, fmt.Errorf("%w: budgetId is required", ErrInvalidPaymentEvent)
	}
	if !ev.Type.Valid() {
		u.count(ev, metrics.OutcomeFailed)
		return PaymentEventResult{}, fmt.Errorf("%w: unknown type %q", ErrInvalidPaymentEvent, ev.Type)
	}
	if !ev.Confirmed {
		u.count(ev, metrics.OutcomeIgnored)
		u.log.Info("unconfirmed payment event ignored",
			zap.String("budget_id", ev.BudgetID),
			zap.String("type", string(ev.Type)),
			zap.String("source", ev.Source),
		)
		return PaymentEventResult{Ignored: true, Reason: "payment not confirmed"}, nil
	}

	var (
		res ConversionResult
		err error
	)
	switch ev.Type {
	case entities.PaymentTypeDownPayment:
		res, err = u.conversion.ConvertBudget(ctx, ev.BudgetID)
	case entities.PaymentTypeFinalPayment:
		res, err = u.conversion.CompleteProject(ctx, ev.BudgetID)
	}
	if err != nil {
		u.count(ev, metrics.OutcomeFailed)
		u.log.Warn("payment event failed",
			zap.String("budget_id", ev.BudgetID),
			zap.String("type", string(ev.Type)),
			zap.String("source", ev.Source),
			zap.Error(err),
		)
		return PaymentEventResult{}, err
	}

	if res.Replayed {
		u.count(ev, metrics.OutcomeReplayed)
	} else {
		u.count(ev, metrics.OutcomeOK)
	}
	return PaymentEventResult{Result: &res}, nil
}

// HandleProviderNotification fetches a Mercado Pago payment and handles it as a
// confirmation when approved. The budget comes from the payment metadata and
// falls back to external_reference as a down payment.
func (u *PaymentEventsUseCase) HandleProviderNotification(ctx context.Context, providerPaymentID string) (PaymentEventResult, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return PaymentEventResult{}, fmt.Errorf("%w: payment id is required", ErrInvalidPaymentEvent)
	}
	if u.gateway == nil {
		return PaymentEventResult{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.gateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		u.log.Error("provider payment lookup failed", zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return PaymentEventResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	if p.Status != "approved" {
		u.log.Info("provider payment not approved",
			zap.String("provider_payment_id", providerPaymentID),
			zap.String("status", p.Status),
		)
		return PaymentEventResult{Ignored: true, Reason: "payment status " + p.Status}, nil
	}

	ev := eventFromProvider(p)
	if ev.BudgetID == "" {
		u.log.Warn("provider payment has no budget reference", zap.String("provider_payment_id", providerPaymentID))
		return PaymentEventResult{Ignored: true, Reason: "payment has no budget reference"}, nil
	}
	return u.Handle(ctx, ev)
}

func eventFromProvider(p interfaces.ProviderPayment) PaymentEvent {
	ev := PaymentEvent{
		BudgetID:  strings.TrimSpace(p.Metadata["budget_id"]),
		Type:      entities.PaymentType(p.Metadata["payment_type"]),
		Confirmed: true,
		Source:    EventSourceMercadoPago,
	}
	if ev.BudgetID == "" {
		ev.BudgetID = strings.TrimSpace(p.ExternalReference)
	}
	if !ev.Type.Valid() {
		ev.Type = entities.PaymentTypeDownPayment
	}
	return ev
}

func (u *PaymentEventsUseCase) count(ev PaymentEvent, outcome string) {
	metrics.PaymentEventsTotal.WithLabelValues(ev.Source, string(ev.Type), outcome).Inc()
}
