package handlers

import (
	"net/http"
	"testing"

	"agency_backoffice/internal/adapter/http/handlers/mocks"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newWebhookRouter(events usecase.IPaymentEventsUseCase) *gin.Engine {
	h := NewWebhookHandler(events, zap.NewNop())
	r := gin.New()
	r.POST("/v1/webhooks/payments", h.PaymentConfirmed)
	r.POST("/v1/webhooks/mercadopago", h.MercadoPagoNotification)
	return r
}

func TestWebhookHandler_PaymentConfirmed(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIPaymentEventsUseCase(ctrl))

		for _, body := range []string{
			`{`,
			`{"type":"down_payment","confirmed":true}`,
			`{"budgetId":"b-1","type":"refund","confirmed":true}`,
			`{"budgetId":"b-1","type":"down_payment"}`,
		} {
			if w := perform(r, http.MethodPost, "/v1/webhooks/payments", body); w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("not confirmed is accepted and ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mocks.NewMockIPaymentEventsUseCase(ctrl)
		r := newWebhookRouter(events)

		events.EXPECT().Handle(gomock.Any(), usecase.PaymentEvent{
			BudgetID: "b-1",
			Type:     entities.PaymentTypeDownPayment,
			Source:   usecase.EventSourceWebhook,
		}).Return(usecase.PaymentEventResult{Ignored: true, Reason: "payment not confirmed"}, nil)

		w := perform(r, http.MethodPost, "/v1/webhooks/payments", `{"budgetId":"b-1","type":"down_payment","confirmed":false}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["ignored"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("confirmed down payment converts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mocks.NewMockIPaymentEventsUseCase(ctrl)
		r := newWebhookRouter(events)

		events.EXPECT().Handle(gomock.Any(), usecase.PaymentEvent{
			BudgetID:  "b-1",
			Type:      entities.PaymentTypeDownPayment,
			Confirmed: true,
			Source:    usecase.EventSourceWebhook,
		}).Return(usecase.PaymentEventResult{Result: &usecase.ConversionResult{
			Project:  entities.Project{ID: "pr-1"},
			Replayed: true,
		}}, nil)

		w := perform(r, http.MethodPost, "/v1/webhooks/payments", `{"budgetId":"b-1","type":"down_payment","confirmed":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		result := decodeBody(t, w)["result"].(map[string]any)
		if result["replayed"] != true || result["project"].(map[string]any)["id"] != "pr-1" {
			t.Fatalf("unexpected result %v", result)
		}
	})

	t.Run("unknown budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mocks.NewMockIPaymentEventsUseCase(ctrl)
		r := newWebhookRouter(events)

		events.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(usecase.PaymentEventResult{}, usecase.ErrBudgetNotFound)

		if w := perform(r, http.MethodPost, "/v1/webhooks/payments", `{"budgetId":"nope","type":"final_payment","confirmed":true}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_MercadoPago(t *testing.T) {
	t.Run("payment notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mocks.NewMockIPaymentEventsUseCase(ctrl)
		r := newWebhookRouter(events)

		events.EXPECT().HandleProviderNotification(gomock.Any(), "987").Return(usecase.PaymentEventResult{Result: &usecase.ConversionResult{}}, nil)

		w := perform(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"payment","action":"payment.updated","data":{"id":"987"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("legacy query format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mocks.NewMockIPaymentEventsUseCase(ctrl)
		r := newWebhookRouter(events)

		events.EXPECT().HandleProviderNotification(gomock.Any(), "555").Return(usecase.PaymentEventResult{Ignored: true, Reason: "payment status pending"}, nil)

		if w := perform(r, http.MethodPost, "/v1/webhooks/mercadopago?topic=payment&id=555", ""); w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("other topics are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIPaymentEventsUseCase(ctrl))

		if w := perform(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"merchant_order","data":{"id":"1"}}`); w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWebhookRouter(mocks.NewMockIPaymentEventsUseCase(ctrl))

		if w := perform(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"payment"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mocks.NewMockIPaymentEventsUseCase(ctrl)
		r := newWebhookRouter(events)

		events.EXPECT().HandleProviderNotification(gomock.Any(), "1").Return(usecase.PaymentEventResult{}, usecase.ErrPaymentGatewayFailed)

		if w := perform(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"payment","data":{"id":1}}`); w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
