package entities

import "errors"

// ErrStaleTransition signals that a proposed status is not reachable from the
// current one (a regression, a repeat, or an edge that does not exist). It is
// an internal consistency guard: callers log and keep the current status, the
// error is never surfaced to users.
var ErrStaleTransition = errors.New("stale or invalid payment status transition")

// legalTransitions is the edge list of the canonical status graph. Terminal
// states have no outgoing edges. Webhook delivery is at-least-once and races
// client polls, so this table is the single idempotency/ordering mechanism:
// any write that is not a legal forward edge is discarded.
var legalTransitions = map[PaymentStatus][]PaymentStatus{
	StatusPendente:    {StatusAutorizado, StatusProcessando, StatusAprovado, StatusRejeitado, StatusCancelado},
	StatusAutorizado:  {StatusProcessando, StatusAprovado, StatusCancelado},
	StatusProcessando: {StatusAprovado, StatusRejeitado, StatusCancelado},
	StatusAprovado:    {StatusReembolsado, StatusContestado},
	// An unknown raw value must not wedge a payment: once the provider starts
	// answering something we recognize, the payment moves on.
	StatusDesconhecido: {StatusPendente, StatusAutorizado, StatusProcessando, StatusAprovado, StatusRejeitado, StatusCancelado, StatusReembolsado, StatusContestado},
	StatusRejeitado:    {},
	StatusCancelado:    {},
	StatusReembolsado:  {},
	StatusContestado:   {},
}

// IsTerminal reports whether the status has no outgoing edges.
func (s PaymentStatus) IsTerminal() bool {
	return len(legalTransitions[s]) == 0
}

// CanTransitionTo reports whether current→target is a legal edge.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, t := range legalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ApplyTransition returns the proposed status when the edge exists; otherwise
// it returns current unchanged together with ErrStaleTransition. Proposing
// the current status again is also stale, which is what absorbs webhook
// replays.
func ApplyTransition(current, proposed PaymentStatus) (PaymentStatus, error) {
	if current.CanTransitionTo(proposed) {
		return proposed, nil
	}
	return current, ErrStaleTransition
}
