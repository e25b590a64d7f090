package usecase

import (
	"context"
	"testing"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestWebhookUseCase_Receive_Rejections(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUseCase(ctrl)
		wh := NewWebhookUseCase(uc)

		res, err := wh.Receive(context.Background(), entities.PaymentProvider("stripe"), []byte(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Ack || res.Reason != "unknown provider" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUseCase(ctrl)
		wh := NewWebhookUseCase(uc)

		m.provider.EXPECT().ParseWebhook(gomock.Any()).Return(interfaces.WebhookNotification{}, interfaces.ErrProviderRejected)

		res, err := wh.Receive(context.Background(), entities.ProviderSimulado, []byte(`{`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Ack || res.Reason != "invalid payload" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("payload without external id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUseCase(ctrl)
		wh := NewWebhookUseCase(uc)

		m.provider.EXPECT().ParseWebhook(gomock.Any()).Return(interfaces.WebhookNotification{}, nil)

		res, err := wh.Receive(context.Background(), entities.ProviderSimulado, []byte(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Ack || res.Reason != "missing external id" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("transient fetch failure is not acked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUseCase(ctrl)
		wh := NewWebhookUseCase(uc)

		m.provider.EXPECT().ParseWebhook(gomock.Any()).Return(interfaces.WebhookNotification{ExternalID: "sim_abc", RequiresFetch: true}, nil)
		m.repo.EXPECT().GetByExternalID(gomock.Any(), entities.ProviderSimulado, "sim_abc").Return(entities.Payment{ID: "pay-1", ExternalID: "sim_abc", Provider: entities.ProviderSimulado, Status: entities.StatusPendente}, nil)
		m.provider.EXPECT().FetchStatus(gomock.Any(), "sim_abc").Return("", interfaces.ErrProviderUnavailable)

		res, err := wh.Receive(context.Background(), entities.ProviderSimulado, []byte(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Ack || res.Reason != "provider unavailable" {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}

func TestWebhookUseCase_Receive_UnresolvableReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUseCase(ctrl)
	wh := NewWebhookUseCase(uc)

	m.provider.EXPECT().ParseWebhook(gomock.Any()).Return(interfaces.WebhookNotification{ExternalID: "ghost"}, nil).Times(3)
	m.repo.EXPECT().GetByExternalID(gomock.Any(), entities.ProviderSimulado, "ghost").Return(entities.Payment{}, nil).Times(3)

	// The first deliveries are rejected so the provider keeps retrying while
	// we might simply be behind on persisting the payment.
	for i := 0; i < maxUnresolvableAttempts-1; i++ {
		res, err := wh.Receive(context.Background(), entities.ProviderSimulado, []byte(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Ack || res.Reason != "unknown external id" {
			t.Fatalf("attempt %d: unexpected result %+v", i+1, res)
		}
	}

	// The last attempt gives up and acks so the retry loop stops.
	res, err := wh.Receive(context.Background(), entities.ProviderSimulado, []byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Ack || res.Reason != "unresolvable reference" {
		t.Fatalf("unexpected final result %+v", res)
	}
}

func TestWebhookUseCase_Receive_AppliesTransition(t *testing.T) {
	t.Run("fetch-on-notify provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUseCase(ctrl)
		wh := NewWebhookUseCase(uc)

		m.provider.EXPECT().ParseWebhook(gomock.Any()).Return(interfaces.WebhookNotification{ExternalID: "sim_abc", RequiresFetch: true}, nil)
		m.repo.EXPECT().GetByExternalID(gomock.Any(), entities.ProviderSimulado, "sim_abc").Return(entities.Payment{ID: "pay-1", OrderID: "order-1", ExternalID: "sim_abc", Provider: entities.ProviderSimulado, Status: entities.StatusPendente}, nil)
		m.provider.EXPECT().FetchStatus(gomock.Any(), "sim_abc").Return("aprovado", nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.StatusPendente, gomock.Any()).Return(
			entities.Payment{ID: "pay-1", OrderID: "order-1", Provider: entities.ProviderSimulado, Status: entities.StatusAprovado}, nil)
		m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusFinalizada).Return(entities.Order{}, nil)
		m.publisher.EXPECT().PublishPaymentResolved(gomock.Any(), gomock.Any()).Return(nil)

		res, err := wh.Receive(context.Background(), entities.ProviderSimulado, []byte(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Ack {
			t.Fatalf("expected ack, got %+v", res)
		}
	})

	t.Run("replay is acked without a second write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUseCase(ctrl)
		wh := NewWebhookUseCase(uc)

		// Payment already aprovado: the proposed transition is stale, no
		// repository write happens, and the delivery is still acknowledged so
		// the provider stops redelivering.
		m.provider.EXPECT().ParseWebhook(gomock.Any()).Return(interfaces.WebhookNotification{ExternalID: "sim_abc", RawStatus: "aprovado"}, nil)
		m.repo.EXPECT().GetByExternalID(gomock.Any(), entities.ProviderSimulado, "sim_abc").Return(entities.Payment{ID: "pay-1", OrderID: "order-1", ExternalID: "sim_abc", Provider: entities.ProviderSimulado, Status: entities.StatusAprovado}, nil)

		res, err := wh.Receive(context.Background(), entities.ProviderSimulado, []byte(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Ack {
			t.Fatalf("expected ack, got %+v", res)
		}
	})
}
