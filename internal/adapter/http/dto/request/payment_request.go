package request

import (
	"encoding/json"
	"strings"
)

// PaymentWebhookRequest is the provider-neutral payment confirmation body. The
// same shape is consumed from Kafka.
type PaymentWebhookRequest struct {
	BudgetID  string `json:"budgetId" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=down_payment final_payment"`
	Confirmed *bool  `json:"confirmed" binding:"required"`
}

// MercadoPagoNotification is the webhook body Mercado Pago posts for payment
// topics. data.id arrives as a string or a number depending on the API version.
type MercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID returns the provider payment id from the body, falling back
// to the `data.id`/`id` query parameters used by the legacy IPN format.
func (n MercadoPagoNotification) ResolvePaymentID(query func(string) string) string {
	if id := strings.TrimSpace(n.Data.ID.String()); id != "" {
		return id
	}
	if id := strings.TrimSpace(query("data.id")); id != "" {
		return id
	}
	return strings.TrimSpace(query("id"))
}

// IsPayment reports whether the notification concerns a payment resource.
func (n MercadoPagoNotification) IsPayment(query func(string) string) bool {
	topic := n.Type
	if topic == "" {
		topic = query("type")
	}
	if topic == "" {
		topic = query("topic")
	}
	return topic == "payment"
}
