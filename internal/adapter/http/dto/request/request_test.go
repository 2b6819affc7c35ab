package request

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterValidators(v); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return v
}

func TestCreateClientRequest_DocumentValidation(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		name  string
		req   CreateClientRequest
		valid bool
	}{
		{"valid cpf", CreateClientRequest{Name: "Ana", DocumentType: "CPF", Document: "529.982.247-25"}, true},
		{"valid cnpj", CreateClientRequest{Name: "Ana", DocumentType: "cnpj", Document: "11222333000181"}, true},
		{"valid passport", CreateClientRequest{Name: "Ana", DocumentType: "PASSPORT", Document: "AB123456"}, true},
		{"bad cpf", CreateClientRequest{Name: "Ana", DocumentType: "CPF", Document: "11111111111"}, false},
		{"cpf under cnpj type", CreateClientRequest{Name: "Ana", DocumentType: "CNPJ", Document: "52998224725"}, false},
		{"auto type", CreateClientRequest{Name: "Ana", DocumentType: "AUTO", Document: "AUTO_1_2"}, false},
		{"empty contact", CreateClientRequest{
			Name:         "Ana",
			DocumentType: "CPF",
			Document:     "52998224725",
			Emails:       []ContactEntryRequest{{Value: ""}},
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestProgressRequest(t *testing.T) {
	v := newValidator(t)

	for _, p := range []int{20, 50, 70, 100} {
		if err := v.Struct(ProgressRequest{Progress: p}); err != nil {
			t.Fatalf("progress %d: %v", p, err)
		}
	}
	for _, p := range []int{0, 10, 30, 101} {
		if err := v.Struct(ProgressRequest{Progress: p}); err == nil {
			t.Fatalf("progress %d: expected validation error", p)
		}
	}

	if !(ProgressRequest{}).ShouldSendEmail() {
		t.Fatalf("expected email by default")
	}
	off := false
	if (ProgressRequest{SendEmail: &off}).ShouldSendEmail() {
		t.Fatalf("expected email disabled")
	}
}

func TestScheduleDeliveryRequest(t *testing.T) {
	v := newValidator(t)

	if err := v.Struct(ScheduleDeliveryRequest{Date: "2026-11-20", Time: "14:30", Type: "video", MeetingLink: "https://meet.example.com/x"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	bad := []ScheduleDeliveryRequest{
		{Date: "20/11/2026", Time: "14:30"},
		{Date: "2026-11-20", Time: "2pm"},
		{Date: "2026-11-20", Time: "14:30", Type: "phone"},
		{Date: "2026-11-20", Time: "14:30", MeetingLink: "meet"},
	}
	for _, r := range bad {
		if err := v.Struct(r); err == nil {
			t.Fatalf("expected validation error for %+v", r)
		}
	}
}

func TestPaymentWebhookRequest(t *testing.T) {
	v := newValidator(t)
	confirmed := false

	if err := v.Struct(PaymentWebhookRequest{BudgetID: "b-1", Type: "down_payment", Confirmed: &confirmed}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := v.Struct(PaymentWebhookRequest{BudgetID: "b-1", Type: "refund", Confirmed: &confirmed}); err == nil {
		t.Fatalf("expected invalid type")
	}
	if err := v.Struct(PaymentWebhookRequest{BudgetID: "b-1", Type: "down_payment"}); err == nil {
		t.Fatalf("expected confirmed to be required")
	}
}

func TestMercadoPagoNotification(t *testing.T) {
	noQuery := func(string) string { return "" }

	for _, body := range []string{
		`{"type":"payment","action":"payment.updated","data":{"id":"123"}}`,
		`{"type":"payment","data":{"id":123}}`,
	} {
		var n MercadoPagoNotification
		if err := json.Unmarshal([]byte(body), &n); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		if !n.IsPayment(noQuery) || n.ResolvePaymentID(noQuery) != "123" {
			t.Fatalf("unexpected notification %+v", n)
		}
	}

	query := map[string]string{"topic": "payment", "id": "456"}
	var legacy MercadoPagoNotification
	get := func(k string) string { return query[k] }
	if !legacy.IsPayment(get) || legacy.ResolvePaymentID(get) != "456" {
		t.Fatalf("expected query fallback")
	}

	merchant := MercadoPagoNotification{Type: "merchant_order"}
	if merchant.IsPayment(noQuery) {
		t.Fatalf("merchant orders are not payments")
	}
}
