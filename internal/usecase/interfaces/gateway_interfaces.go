package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentLinkRequest describes a checkout link for one staged payment.
type PaymentLinkRequest struct {
	Amount      decimal.Decimal
	Description string
	PayerEmail  string
	// Metadata is echoed back by the provider on payment notifications.
	Metadata map[string]string
}

type PaymentLink struct {
	ID  string
	URL string
}

// ProviderPayment is the provider's view of a payment, read when a webhook arrives.
type ProviderPayment struct {
	ID                string
	Status            string
	ExternalReference string
	Metadata          map[string]string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLink, error)
	GetPayment(ctx context.Context, providerPaymentID string) (ProviderPayment, error)
}

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// IEmailSender delivers transactional email. Callers treat failures as best-effort.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
