package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"agency_backoffice/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid provider payment id")
)

const (
	currencyBRL = "BRL"
	mockLinkURL = "https://mock.mercadopago.local/checkout/"
)

// MercadoPagoGateway creates checkout preferences (payment links) and reads
// payments back when a webhook arrives.
//
// In mock mode no request leaves the process: links are synthetic and every
// payment read reports approved, which lets the whole flow run locally.
type MercadoPagoGateway struct {
	preferences     preference.Client
	payments        payment.Client
	notificationURL string
	mockMode        bool
	log             *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, notificationURL string, mockMode bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = log.Named("payment.gateway")
	if mockMode {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: notificationURL,
		log:             log,
	}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("mock link created", zap.String("link_id", id), zap.String("amount", req.Amount.StringFixed(2)))
		return interfaces.PaymentLink{ID: id, URL: mockLinkURL + id}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.PaymentLink{}, ErrMercadoPagoGatewayNotConfigured
	}

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	pr := preference.Request{
		Items: []preference.ItemRequest{{
			Title:      req.Description,
			Quantity:   1,
			UnitPrice:  req.Amount.InexactFloat64(),
			CurrencyID: currencyBRL,
		}},
		ExternalReference: req.Metadata["budget_id"],
		NotificationURL:   g.notificationURL,
		Metadata:          metadata,
	}
	if req.PayerEmail != "" {
		pr.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	resp, err := g.preferences.Create(ctx, pr)
	if err != nil {
		g.log.Error("sdk preference create failed", zap.Error(err))
		return interfaces.PaymentLink{}, err
	}
	g.log.Info("preference created", zap.String("link_id", resp.ID))
	return interfaces.PaymentLink{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return interfaces.ProviderPayment{ID: providerPaymentID, Status: "approved"}, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.log.Error("sdk payment get failed", zap.Int("provider_payment_id", id), zap.Error(err))
		return interfaces.ProviderPayment{}, err
	}

	metadata := make(map[string]string, len(resp.Metadata))
	for k, v := range resp.Metadata {
		metadata[k] = fmt.Sprintf("%v", v)
	}
	return interfaces.ProviderPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Metadata:          metadata,
	}, nil
}
