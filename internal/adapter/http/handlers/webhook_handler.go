package handlers

import (
	"net/http"

	request "agency_backoffice/internal/adapter/http/dto/request"
	response "agency_backoffice/internal/adapter/http/dto/response"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives payment confirmations from providers. Deliveries
// may repeat; the conversion behind them is idempotent.
type WebhookHandler struct {
	events usecase.IPaymentEventsUseCase
	log    *zap.Logger
}

func NewWebhookHandler(events usecase.IPaymentEventsUseCase, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{events: events, log: log.Named("webhooks")}
}

// PaymentConfirmed godoc
// @Summary      Provider-neutral payment confirmation
// @Description  confirmed=false is acknowledged with 202 and ignored.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Webhook-Signature  header    string                         true  "sha256=<hex HMAC-SHA256 of the body>"
// @Param        body                 body      request.PaymentWebhookRequest  true  "Payment event"
// @Success      200                  {object}  response.PaymentEventResponse
// @Success      202                  {object}  response.PaymentEventResponse
// @Failure      401                  {object}  pkg.HTTPError
// @Router       /webhooks/payments [post]
func (h *WebhookHandler) PaymentConfirmed(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	res, err := h.events.Handle(c.Request.Context(), usecase.PaymentEvent{
		BudgetID:  payload.BudgetID,
		Type:      entities.PaymentType(payload.Type),
		Confirmed: *payload.Confirmed,
		Source:    usecase.EventSourceWebhook,
	})
	if err != nil {
		renderError(c, mapPaymentError(err))
		return
	}
	h.respond(c, res)
}

// MercadoPagoNotification godoc
// @Summary      Mercado Pago payment notification
// @Description  The payment is fetched from Mercado Pago; only approved payments are handled.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.PaymentEventResponse
// @Success      202  {object}  response.PaymentEventResponse
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPagoNotification(c *gin.Context) {
	var payload request.MercadoPagoNotification
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			h.log.Debug("mercado pago body not parsed, using query", zap.Error(err))
		}
	}

	if !payload.IsPayment(c.Query) {
		c.JSON(http.StatusAccepted, response.PaymentEventResponse{Ignored: true, Reason: "not a payment notification"})
		return
	}
	paymentID := payload.ResolvePaymentID(c.Query)
	if paymentID == "" {
		renderError(c, errInvalidPayload)
		return
	}

	res, err := h.events.HandleProviderNotification(c.Request.Context(), paymentID)
	if err != nil {
		renderError(c, mapPaymentError(err))
		return
	}
	h.respond(c, res)
}

func (h *WebhookHandler) respond(c *gin.Context, res usecase.PaymentEventResult) {
	status := http.StatusOK
	if res.Ignored {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromPaymentEventResult(res))
}
