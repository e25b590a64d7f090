package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase/interfaces"
)

func newPagSeguroTestProvider(t *testing.T, handler http.HandlerFunc) *PagSeguroProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewPagSeguroProvider(PagSeguroConfig{
		Token:           "test-token",
		BaseURL:         srv.URL,
		NotificationURL: "https://farmacia.example/v1/webhooks/pagseguro",
	}, srv.Client())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNewPagSeguroProvider_MissingToken(t *testing.T) {
	if _, err := NewPagSeguroProvider(PagSeguroConfig{}, nil); !errors.Is(err, ErrMissingPagSeguroToken) {
		t.Fatalf("expected ErrMissingPagSeguroToken, got %v", err)
	}
}

func TestPagSeguroProvider_CreateCharge(t *testing.T) {
	t.Run("success scales amount to centavos", func(t *testing.T) {
		var received pagSeguroChargeRequest
		g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/charges" {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer test-token" {
				t.Fatalf("missing bearer token, got %q", r.Header.Get("Authorization"))
			}
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Fatalf("decoding request: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{
				"id": "CHAR_123",
				"reference_id": "order-1",
				"status": "WAITING",
				"links": [
					{"rel": "SELF", "href": "https://api/charges/CHAR_123"},
					{"rel": "PAY", "href": "https://pay.example/CHAR_123"}
				]
			}`))
		})

		out, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
			OrderID:  "order-1",
			Amount:   42.90,
			Currency: "BRL",
			Customer: entities.Customer{Name: "Maria", Email: "maria@test.com", Document: "12345678900"},
			Items:    []entities.OrderItem{{Name: "Dipirona 500mg", Quantity: 2, UnitPrice: 21.45}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ExternalID != "CHAR_123" || out.RawStatus != "WAITING" {
			t.Fatalf("unexpected output %+v", out)
		}
		if out.RedirectURL != "https://pay.example/CHAR_123" {
			t.Fatalf("expected PAY link, got %q", out.RedirectURL)
		}
		if received.Amount.Value != 4290 {
			t.Fatalf("expected 4290 centavos, got %d", received.Amount.Value)
		}
		if len(received.Items) != 1 || received.Items[0].UnitPrice != 2145 {
			t.Fatalf("unexpected items %+v", received.Items)
		}
		if len(received.NotificationURLs) != 1 {
			t.Fatalf("expected notification url, got %+v", received.NotificationURLs)
		}
	})

	t.Run("boleto is replaced by pix", func(t *testing.T) {
		var received pagSeguroChargeRequest
		g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&received)
			_, _ = w.Write([]byte(`{"id":"CHAR_1","status":"WAITING"}`))
		})

		_, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
			OrderID:  "order-1",
			Amount:   10,
			Currency: "BRL",
			Metadata: map[string]string{"payment_method": "boleto"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if received.PaymentMethod.Type != "PIX" {
			t.Fatalf("expected PIX, got %q", received.PaymentMethod.Type)
		}
	})

	t.Run("credit card capped installments", func(t *testing.T) {
		var received pagSeguroChargeRequest
		g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&received)
			_, _ = w.Write([]byte(`{"id":"CHAR_1","status":"WAITING"}`))
		})

		_, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{
			OrderID:  "order-1",
			Amount:   300,
			Currency: "BRL",
			Metadata: map[string]string{"payment_method": "credit_card"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if received.PaymentMethod.Installments != pagSeguroMaxInstallments {
			t.Fatalf("expected %d installments, got %d", pagSeguroMaxInstallments, received.PaymentMethod.Installments)
		}
	})

	t.Run("4xx maps to rejected with provider reason", func(t *testing.T) {
		g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_messages":[{"code":"40002","description":"invalid_parameter"}]}`))
		})

		_, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{OrderID: "order-1", Amount: 10, Currency: "BRL"})
		if !errors.Is(err, interfaces.ErrProviderRejected) {
			t.Fatalf("expected ErrProviderRejected, got %v", err)
		}
	})

	t.Run("5xx maps to unavailable", func(t *testing.T) {
		g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{OrderID: "order-1", Amount: 10, Currency: "BRL"})
		if !errors.Is(err, interfaces.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("429 maps to unavailable", func(t *testing.T) {
		g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := g.CreateCharge(context.Background(), interfaces.CreateChargeInput{OrderID: "order-1", Amount: 10, Currency: "BRL"})
		if !errors.Is(err, interfaces.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
	})
}

func TestPagSeguroProvider_FetchStatus(t *testing.T) {
	g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/charges/CHAR_123" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"CHAR_123","status":"PAID"}`))
	})

	raw, err := g.FetchStatus(context.Background(), "CHAR_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "PAID" {
		t.Fatalf("expected PAID, got %q", raw)
	}
}

func TestPagSeguroProvider_Refund(t *testing.T) {
	g := newPagSeguroTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/charges/CHAR_123/cancel" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]pagSeguroAmount
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body["amount"].Value != 1050 {
			t.Fatalf("expected 1050 centavos, got %d", body["amount"].Value)
		}
		_, _ = w.Write([]byte(`{"id":"CHAR_123","status":"CANCELED"}`))
	})

	out, err := g.Refund(context.Background(), "CHAR_123", 10.50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RefundID != "CHAR_123" || out.RefundedAmount != 10.50 || out.RawStatus != "refunded" {
		t.Fatalf("unexpected refund %+v", out)
	}
}

func TestPagSeguroProvider_ParseWebhook(t *testing.T) {
	g := &PagSeguroProvider{}

	t.Run("charge posted inline", func(t *testing.T) {
		n, err := g.ParseWebhook([]byte(`{"id":"CHAR_123","reference_id":"order-1","status":"PAID","amount":{"value":4290,"currency":"BRL"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.ExternalID != "CHAR_123" || n.RawStatus != "PAID" || n.OrderRef != "order-1" {
			t.Fatalf("unexpected notification %+v", n)
		}
		if n.Amount != 42.90 {
			t.Fatalf("expected 42.90, got %v", n.Amount)
		}
		if n.RequiresFetch {
			t.Fatalf("pagseguro webhooks need no follow-up fetch")
		}
	})

	t.Run("missing charge id", func(t *testing.T) {
		if _, err := g.ParseWebhook([]byte(`{"status":"PAID"}`)); err == nil {
			t.Fatalf("expected error for missing id")
		}
	})
}
