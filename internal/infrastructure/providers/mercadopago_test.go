package providers

import (
	"context"
	"errors"
	"testing"

	"farmacia_xpto/internal/usecase/interfaces"
)

func TestNewMercadoPagoProvider_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoProvider(MercadoPagoConfig{}); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoProvider_ParseWebhook(t *testing.T) {
	g := &MercadoPagoProvider{}

	t.Run("payment notification needs a fetch", func(t *testing.T) {
		n, err := g.ParseWebhook([]byte(`{"action":"payment.updated","type":"payment","data":{"id":"123456"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.ExternalID != "123456" {
			t.Fatalf("unexpected external id %q", n.ExternalID)
		}
		if !n.RequiresFetch {
			t.Fatalf("mercadopago webhooks carry only the payment id; fetch is required")
		}
	})

	t.Run("non payment notification rejected", func(t *testing.T) {
		if _, err := g.ParseWebhook([]byte(`{"type":"plan","data":{"id":"1"}}`)); err == nil {
			t.Fatalf("expected error for unsupported type")
		}
	})

	t.Run("missing data id rejected", func(t *testing.T) {
		if _, err := g.ParseWebhook([]byte(`{"type":"payment","data":{}}`)); err == nil {
			t.Fatalf("expected error for missing data.id")
		}
	})
}

func TestMercadoPagoProvider_MalformedExternalID(t *testing.T) {
	g := &MercadoPagoProvider{}

	if _, err := g.FetchStatus(context.Background(), "not-a-number"); !errors.Is(err, interfaces.ErrProviderRejected) {
		t.Fatalf("expected ErrProviderRejected, got %v", err)
	}
	if _, err := g.Refund(context.Background(), "not-a-number", 10); !errors.Is(err, interfaces.ErrProviderRejected) {
		t.Fatalf("expected ErrProviderRejected, got %v", err)
	}
}

func TestTranslateMercadoPagoError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"embedded 400", errors.New(`api error: {"status":400,"message":"bad request"}`), interfaces.ErrProviderRejected},
		{"embedded 404", errors.New(`api error: {"status":404,"message":"not found"}`), interfaces.ErrProviderRejected},
		{"card rejected", errors.New("cc_rejected_insufficient_amount"), interfaces.ErrProviderRejected},
		{"embedded 500", errors.New(`api error: {"status":500,"message":"oops"}`), interfaces.ErrProviderUnavailable},
		{"transport failure", errors.New("dial tcp: connection refused"), interfaces.ErrProviderUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := translateMercadoPagoError(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("translateMercadoPagoError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
