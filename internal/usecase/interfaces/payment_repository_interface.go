package interfaces

import (
	"context"
	"errors"
	"time"

	"farmacia_xpto/internal/domain/entities"
)

// ErrStatusConflict is returned by UpdateStatus when the stored status no
// longer matches the expected one, i.e. a concurrent poll/webhook won the
// write. Callers re-read and re-evaluate the transition.
var ErrStatusConflict = errors.New("payment status changed concurrently")

// PaymentUpdate is the payload of a conditional status write. Only the set
// optional fields are written.
type PaymentUpdate struct {
	Status     entities.PaymentStatus
	RawStatus  string
	ApprovedAt *time.Time
	Refund     *entities.Refund
}

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// UpdateStatus must be a single conditional write keyed on the expected
// current status. That conditional write is the only serialization point
// between a client poll and an inbound webhook racing on the same record.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByExternalID(ctx context.Context, provider entities.PaymentProvider, externalID string) (entities.Payment, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, expected entities.PaymentStatus, upd PaymentUpdate) (entities.Payment, error)
}
