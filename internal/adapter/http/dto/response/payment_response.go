package response

import (
	"time"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase"
)

type PaymentResponse struct {
	PaymentID         string          `json:"payment_id"`
	OrderID           string          `json:"order_id"`
	Provider          string          `json:"provider"`
	ExternalID        string          `json:"external_id,omitempty"`
	Amount            float64         `json:"amount"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	RawProviderStatus string          `json:"raw_provider_status,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	LastUpdatedAt     time.Time       `json:"last_updated_at"`
	ApprovedAt        *time.Time      `json:"approved_at,omitempty"`
	Refund            *RefundResponse `json:"refund,omitempty"`

	// Only set on create, depending on the provider's checkout model.
	RedirectURL  string `json:"redirect_url,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

type RefundResponse struct {
	RefundID       string  `json:"refund_id"`
	RefundedAmount float64 `json:"refunded_amount"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:         p.ID,
		OrderID:           p.OrderID,
		Provider:          string(p.Provider),
		ExternalID:        p.ExternalID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            string(p.Status),
		RawProviderStatus: p.RawProviderStatus,
		CreatedAt:         p.CreatedAt,
		LastUpdatedAt:     p.LastUpdatedAt,
		ApprovedAt:        p.ApprovedAt,
	}
	if p.Refund != nil {
		resp.Refund = &RefundResponse{
			RefundID:       p.Refund.RefundID,
			RefundedAmount: p.Refund.RefundedAmount,
		}
	}
	return resp
}

func FromCreateOutput(out usecase.CreatePaymentOutput) PaymentResponse {
	resp := FromPayment(out.Payment)
	resp.RedirectURL = out.RedirectURL
	resp.ClientSecret = out.ClientSecret
	return resp
}

// WebhookAckResponse is the fast, idempotent answer to provider pushes.
type WebhookAckResponse struct {
	Ack    bool   `json:"ack"`
	Reason string `json:"reason,omitempty"`
}
