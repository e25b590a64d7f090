package events

import (
	"context"
	"log"

	"farmacia_xpto/internal/usecase/interfaces"
)

// LogPublisher is the publisher used when no broker is configured (local
// runs, tests): events go to the log and nowhere else.

type LogPublisher struct{}

var _ interfaces.IEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) PublishPaymentResolved(_ context.Context, evt interfaces.PaymentResolvedEvent) error {
	log.Printf("[payment][events] payment resolved payment_id=%s order_id=%s provider=%s status=%s amount=%.2f", evt.PaymentID, evt.OrderID, evt.Provider, evt.Status, evt.Amount)
	return nil
}
