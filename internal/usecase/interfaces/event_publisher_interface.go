package interfaces

import (
	"context"
	"time"
)

// PaymentResolvedEvent is published whenever a payment enters aprovado or a
// failure/refund terminal state, so other subsystems (cash-flow reports,
// notifications) can react without the orchestrator knowing about them.
type PaymentResolvedEvent struct {
	PaymentID  string    `json:"payment_id"`
	OrderID    string    `json:"order_id"`
	Provider   string    `json:"provider"`
	Status     string    `json:"status"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

// IEventPublisher abstracts the event transport (Kafka in production, a
// log-only publisher locally).
type IEventPublisher interface {
	PublishPaymentResolved(ctx context.Context, evt PaymentResolvedEvent) error
}
