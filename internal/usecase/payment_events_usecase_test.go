package usecase

import (
	"context"
	"errors"
	"testing"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"
	mock_interfaces "agency_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fakeConversion struct {
	converted []string
	completed []string
	result    ConversionResult
	err       error
}

func (f *fakeConversion) ConvertBudget(_ context.Context, budgetID string) (ConversionResult, error) {
	f.converted = append(f.converted, budgetID)
	return f.result, f.err
}

func (f *fakeConversion) CompleteProject(_ context.Context, budgetID string) (ConversionResult, error) {
	f.completed = append(f.completed, budgetID)
	return f.result, f.err
}

func TestPaymentEventsUseCase_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("down payment converts the budget", func(t *testing.T) {
		conv := &fakeConversion{result: ConversionResult{Project: entities.Project{ID: "p-1"}}}
		uc := NewPaymentEventsUseCase(conv, nil, zapNop())

		res, err := uc.Handle(ctx, PaymentEvent{BudgetID: " b-1 ", Type: entities.PaymentTypeDownPayment, Confirmed: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(conv.converted) != 1 || conv.converted[0] != "b-1" {
			t.Fatalf("expected conversion of b-1, got %v", conv.converted)
		}
		if res.Ignored || res.Result == nil || res.Result.Project.ID != "p-1" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("final payment completes the project", func(t *testing.T) {
		conv := &fakeConversion{}
		uc := NewPaymentEventsUseCase(conv, nil, zapNop())

		if _, err := uc.Handle(ctx, PaymentEvent{BudgetID: "b-1", Type: entities.PaymentTypeFinalPayment, Confirmed: true, Source: EventSourceKafka}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(conv.completed) != 1 || len(conv.converted) != 0 {
			t.Fatalf("expected one completion, got %v / %v", conv.completed, conv.converted)
		}
	})

	t.Run("unconfirmed is ignored", func(t *testing.T) {
		conv := &fakeConversion{}
		uc := NewPaymentEventsUseCase(conv, nil, zapNop())

		res, err := uc.Handle(ctx, PaymentEvent{BudgetID: "b-1", Type: entities.PaymentTypeDownPayment})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Ignored || len(conv.converted) != 0 {
			t.Fatalf("expected ignored event, got %+v", res)
		}
	})

	t.Run("invalid events", func(t *testing.T) {
		uc := NewPaymentEventsUseCase(&fakeConversion{}, nil, zapNop())

		if _, err := uc.Handle(ctx, PaymentEvent{Type: entities.PaymentTypeDownPayment, Confirmed: true}); !errors.Is(err, ErrInvalidPaymentEvent) {
			t.Fatalf("expected ErrInvalidPaymentEvent, got %v", err)
		}
		if _, err := uc.Handle(ctx, PaymentEvent{BudgetID: "b-1", Type: "refund", Confirmed: true}); !errors.Is(err, ErrInvalidPaymentEvent) {
			t.Fatalf("expected ErrInvalidPaymentEvent, got %v", err)
		}
	})

	t.Run("conversion error is returned", func(t *testing.T) {
		uc := NewPaymentEventsUseCase(&fakeConversion{err: ErrBudgetNotFound}, nil, zapNop())
		if _, err := uc.Handle(ctx, PaymentEvent{BudgetID: "b-1", Type: entities.PaymentTypeDownPayment, Confirmed: true}); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestPaymentEventsUseCase_HandleProviderNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("approved payment with metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(interfaces.ProviderPayment{
			ID:       "123",
			Status:   "approved",
			Metadata: map[string]string{"budget_id": "b-9", "payment_type": "final_payment"},
		}, nil)
		conv := &fakeConversion{}
		uc := NewPaymentEventsUseCase(conv, gateway, zapNop())

		if _, err := uc.HandleProviderNotification(ctx, "123"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(conv.completed) != 1 || conv.completed[0] != "b-9" {
			t.Fatalf("expected completion of b-9, got %v", conv.completed)
		}
	})

	t.Run("external reference fallback is a down payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().GetPayment(gomock.Any(), "124").Return(interfaces.ProviderPayment{
			ID:                "124",
			Status:            "approved",
			ExternalReference: "b-7",
		}, nil)
		conv := &fakeConversion{}
		uc := NewPaymentEventsUseCase(conv, gateway, zapNop())

		if _, err := uc.HandleProviderNotification(ctx, "124"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(conv.converted) != 1 || conv.converted[0] != "b-7" {
			t.Fatalf("expected conversion of b-7, got %v", conv.converted)
		}
	})

	t.Run("pending payment is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().GetPayment(gomock.Any(), "125").Return(interfaces.ProviderPayment{ID: "125", Status: "pending", ExternalReference: "b-1"}, nil)
		conv := &fakeConversion{}
		uc := NewPaymentEventsUseCase(conv, gateway, zapNop())

		res, err := uc.HandleProviderNotification(ctx, "125")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Ignored || len(conv.converted) != 0 {
			t.Fatalf("expected ignored, got %+v", res)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().GetPayment(gomock.Any(), "126").Return(interfaces.ProviderPayment{}, errors.New("boom"))
		uc := NewPaymentEventsUseCase(&fakeConversion{}, gateway, zapNop())

		if _, err := uc.HandleProviderNotification(ctx, "126"); !errors.Is(err, ErrPaymentGatewayFailed) {
			t.Fatalf("expected ErrPaymentGatewayFailed, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentEventsUseCase(&fakeConversion{}, nil, zapNop())
		if _, err := uc.HandleProviderNotification(ctx, "1"); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}
