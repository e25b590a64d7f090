package interfaces

import "context"

// IPaymentAuthorizer is the opaque "caller may pay this order" predicate.
// Session handling lives elsewhere; the orchestrator only consumes the
// answer.
type IPaymentAuthorizer interface {
	CallerMayPay(ctx context.Context, callerID, orderID string) (bool, error)
}
