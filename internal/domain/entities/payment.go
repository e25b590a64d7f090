package entities

import "time"

// PaymentProvider identifies a registered external payment provider.
//
// "simulado" is a non-live provider used by the back-office for manual test
// flows: charges never leave the process and an operator resolves them by
// hand (approve/reject) instead of real settlement.

type PaymentProvider string

const (
	ProviderMercadoPago PaymentProvider = "mercadopago"
	ProviderPagSeguro   PaymentProvider = "pagseguro"
	ProviderSimulado    PaymentProvider = "simulado"
)

func (p PaymentProvider) Valid() bool {
	switch p {
	case ProviderMercadoPago, ProviderPagSeguro, ProviderSimulado:
		return true
	default:
		return false
	}
}

// PaymentStatus is the canonical, provider-independent payment state.
//
// Each provider exposes its own raw status vocabulary; the status normalizer
// maps raw values into this set. Raw values we do not recognize become
// StatusDesconhecido instead of failing the call.

type PaymentStatus string

const (
	StatusPendente     PaymentStatus = "pendente"
	StatusAutorizado   PaymentStatus = "autorizado"
	StatusProcessando  PaymentStatus = "processando"
	StatusAprovado     PaymentStatus = "aprovado"
	StatusRejeitado    PaymentStatus = "rejeitado"
	StatusCancelado    PaymentStatus = "cancelado"
	StatusReembolsado  PaymentStatus = "reembolsado"
	StatusContestado   PaymentStatus = "contestado"
	StatusDesconhecido PaymentStatus = "desconhecido"
)

// Refund is the optional refund sub-record of a Payment.
type Refund struct {
	RefundID       string  `json:"refund_id"`
	RefundedAmount float64 `json:"refunded_amount"`
	RawStatus      string  `json:"raw_status,omitempty"`
}

// OrderItem is the slice of an order a charge is created for. Owned by the
// order service; we only forward it to providers that itemize charges.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Customer identifies the payer as the providers expect it.
type Customer struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Document string `json:"document,omitempty"`
}

// Payment is one attempted charge against an order, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (external_id-index): provider_external_id ("<provider>#<external_id>")
//
// Invariants:
//   - At most one non-terminal Payment per order_id (enforced on create).
//   - Status only moves forward through the transition table; regressions are
//     discarded, never applied.
//   - ExternalID is immutable once the provider assigns it.

type Payment struct {
	ID                string        `json:"id"`
	OrderID           string        `json:"order_id"`
	Provider          PaymentProvider `json:"provider"`
	ExternalID        string        `json:"external_id,omitempty"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency"`
	Status            PaymentStatus `json:"status"`
	RawProviderStatus string        `json:"raw_provider_status,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	LastUpdatedAt     time.Time     `json:"last_updated_at"`
	ApprovedAt        *time.Time    `json:"approved_at,omitempty"`
	Refund            *Refund       `json:"refund,omitempty"`
}
