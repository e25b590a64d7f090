package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"farmacia_xpto/internal/usecase/interfaces"
)

func TestSimuladoProvider_CreateCharge(t *testing.T) {
	g := NewSimuladoProvider()

	out, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
		OrderID: "order-1",
		Amount:  42.90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.ExternalID, "sim_") {
		t.Fatalf("unexpected external id %q", out.ExternalID)
	}
	if out.RawStatus != "pendente" {
		t.Fatalf("expected pendente, got %q", out.RawStatus)
	}
	if out.RedirectURL != "simulado://pagamento/"+out.ExternalID {
		t.Fatalf("unexpected redirect url %q", out.RedirectURL)
	}
}

func TestSimuladoProvider_FetchStatus(t *testing.T) {
	t.Run("unknown charge", func(t *testing.T) {
		g := NewSimuladoProvider()
		_, err := g.FetchStatus(context.Background(), "sim_missing")
		if !errors.Is(err, interfaces.ErrProviderRejected) {
			t.Fatalf("expected ErrProviderRejected, got %v", err)
		}
	})

	t.Run("aprovar scenario resolves after a couple of fetches", func(t *testing.T) {
		g := NewSimuladoProvider()
		out, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
			OrderID:  "order-1",
			Amount:   10,
			Metadata: map[string]string{"scenario": ScenarioAprovar},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		raw, err := g.FetchStatus(context.Background(), out.ExternalID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raw != "pendente" {
			t.Fatalf("expected first fetch pendente, got %q", raw)
		}

		raw, err = g.FetchStatus(context.Background(), out.ExternalID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raw != "aprovado" {
			t.Fatalf("expected aprovado after %d fetches, got %q", simuladoFetchesBeforeResolve, raw)
		}
	})

	t.Run("rejeitar scenario resolves to rejeitado", func(t *testing.T) {
		g := NewSimuladoProvider()
		out, _ := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
			OrderID:  "order-1",
			Amount:   10,
			Metadata: map[string]string{"scenario": ScenarioRejeitar},
		})

		var raw string
		for i := 0; i < simuladoFetchesBeforeResolve; i++ {
			raw, _ = g.FetchStatus(context.Background(), out.ExternalID)
		}
		if raw != "rejeitado" {
			t.Fatalf("expected rejeitado, got %q", raw)
		}
	})

	t.Run("timeout scenario never auto-resolves", func(t *testing.T) {
		g := NewSimuladoProvider()
		out, _ := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
			OrderID:  "order-1",
			Amount:   10,
			Metadata: map[string]string{"scenario": ScenarioTimeout},
		})

		for i := 0; i < 10; i++ {
			raw, err := g.FetchStatus(context.Background(), out.ExternalID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if raw != "pendente" {
				t.Fatalf("fetch %d: expected pendente, got %q", i+1, raw)
			}
		}
	})
}

func TestSimuladoProvider_Override(t *testing.T) {
	g := NewSimuladoProvider()
	out, _ := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
		OrderID:  "order-1",
		Amount:   10,
		Metadata: map[string]string{"scenario": ScenarioTimeout},
	})

	raw, err := g.Override(context.Background(), out.ExternalID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "aprovado" {
		t.Fatalf("expected aprovado, got %q", raw)
	}

	// The override must stick so later fetches agree with it.
	raw, err = g.FetchStatus(context.Background(), out.ExternalID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "aprovado" {
		t.Fatalf("expected aprovado after override, got %q", raw)
	}
}

func TestSimuladoProvider_Refund(t *testing.T) {
	t.Run("refund before approval rejected", func(t *testing.T) {
		g := NewSimuladoProvider()
		out, _ := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{OrderID: "order-1", Amount: 10})

		_, err := g.Refund(context.Background(), out.ExternalID, 10)
		if !errors.Is(err, interfaces.ErrProviderRejected) {
			t.Fatalf("expected ErrProviderRejected, got %v", err)
		}
	})

	t.Run("refund after approval", func(t *testing.T) {
		g := NewSimuladoProvider()
		out, _ := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{OrderID: "order-1", Amount: 10})
		if _, err := g.Override(context.Background(), out.ExternalID, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ref, err := g.Refund(context.Background(), out.ExternalID, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref.RefundedAmount != 10 || ref.RawStatus != "reembolsado" {
			t.Fatalf("unexpected refund %+v", ref)
		}
	})
}

func TestSimuladoProvider_ParseWebhook(t *testing.T) {
	g := NewSimuladoProvider()

	t.Run("valid payload", func(t *testing.T) {
		n, err := g.ParseWebhook([]byte(`{"external_id":"sim_abc","status":"aprovado","order_ref":"order-1","amount":42.9}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.ExternalID != "sim_abc" || n.RawStatus != "aprovado" || n.OrderRef != "order-1" {
			t.Fatalf("unexpected notification %+v", n)
		}
		if n.RequiresFetch {
			t.Fatalf("simulado webhooks carry the status inline")
		}
	})

	t.Run("missing external id", func(t *testing.T) {
		if _, err := g.ParseWebhook([]byte(`{"status":"aprovado"}`)); err == nil {
			t.Fatalf("expected error for missing external_id")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := g.ParseWebhook([]byte(`{`)); err == nil {
			t.Fatalf("expected error for malformed payload")
		}
	})
}
