package auth

import (
	"context"
	"log"
	"strings"

	"farmacia_xpto/internal/usecase/interfaces"
)

// CallerAuthorizer is the default implementation of the "caller may pay this
// order" predicate. Session validation happens upstream; here we only demand
// a caller identity when the deployment asks for one.

type CallerAuthorizer struct {
	requireCaller bool
}

var _ interfaces.IPaymentAuthorizer = (*CallerAuthorizer)(nil)

func NewCallerAuthorizer(requireCaller bool) *CallerAuthorizer {
	return &CallerAuthorizer{requireCaller: requireCaller}
}

func (a *CallerAuthorizer) CallerMayPay(_ context.Context, callerID, orderID string) (bool, error) {
	if a.requireCaller && strings.TrimSpace(callerID) == "" {
		log.Printf("[payment][auth] missing caller identity order_id=%s", orderID)
		return false, nil
	}
	return true, nil
}
