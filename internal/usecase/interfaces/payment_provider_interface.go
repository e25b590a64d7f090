package interfaces

import (
	"context"
	"errors"

	"farmacia_xpto/internal/domain/entities"
)

// Adapter failure taxonomy. Adapters must translate every transport or
// provider-side error into one of these (wrapped); a raw transport error
// never escapes the adapter boundary.
var (
	// ErrProviderUnavailable covers network errors, timeouts and provider 5xx:
	// the caller may retry.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	// ErrProviderRejected means the provider explicitly declined the request:
	// terminal, surfaced to the user as a canonical message.
	ErrProviderRejected = errors.New("payment provider rejected the request")
)

// CreateChargeInput is the canonical charge request; each adapter owns the
// translation into its provider's wire format (amount scaling, installment
// limits, excluded payment methods).
type CreateChargeInput struct {
	OrderID  string
	Amount   float64
	Currency string
	Items    []entities.OrderItem
	Customer entities.Customer
	// Metadata carries provider-specific hints (payment_method_id, simulado
	// scenario) without widening the canonical contract.
	Metadata map[string]string
}

// CreateChargeOutput is the canonical result of a charge creation.
// RedirectURL and ClientSecret are mutually optional: which one comes back
// depends on the provider's checkout model.
type CreateChargeOutput struct {
	ExternalID   string
	RawStatus    string
	RedirectURL  string
	ClientSecret string
}

// RefundOutput is the canonical result of a refund request.
type RefundOutput struct {
	RefundID       string
	RefundedAmount float64
	RawStatus      string
}

// WebhookNotification is what an adapter extracts from a provider push.
// RequiresFetch is set by providers whose webhooks carry only a reference
// (Mercado Pago sends just the payment id); the ingestor then resolves the
// raw status with FetchStatus.
type WebhookNotification struct {
	ExternalID    string
	RawStatus     string
	OrderRef      string
	Amount        float64
	RequiresFetch bool
}

// IPaymentProvider is the per-provider adapter contract. Adapters are
// stateless beyond the outbound call (the simulado provider keeps an
// in-process charge ledger since it has no remote side).

type IPaymentProvider interface {
	Name() entities.PaymentProvider
	CreateCharge(ctx context.Context, in CreateChargeInput) (CreateChargeOutput, error)
	FetchStatus(ctx context.Context, externalID string) (rawStatus string, err error)
	Refund(ctx context.Context, externalID string, amount float64) (RefundOutput, error)
	ParseWebhook(payload []byte) (WebhookNotification, error)
	SupportsManualOverride() bool
}

// IManualOverrideProvider is implemented by providers that let an operator
// resolve a charge by hand (the simulado provider). Override flips the
// provider-side record so later FetchStatus calls agree with the override.
type IManualOverrideProvider interface {
	Override(ctx context.Context, externalID string, approve bool) (rawStatus string, err error)
}
