package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Payment pipeline counters, exposed on /metrics. Stale transitions are the
// interesting one operationally: a steady rate means providers are pushing
// replays or out-of-order notifications, a spike usually means a
// misconfigured webhook.

var (
	PaymentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_payments_created_total",
		Help: "Payments created, by provider.",
	}, []string{"provider"})

	PaymentsApproved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_payments_approved_total",
		Help: "Payments that reached aprovado, by provider.",
	}, []string{"provider"})

	TransitionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_payment_transitions_applied_total",
		Help: "Canonical status transitions applied, by target status.",
	}, []string{"status"})

	StaleTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmacia_payment_transitions_stale_total",
		Help: "Proposed transitions discarded by the transition table.",
	})

	WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "farmacia_payment_webhooks_received_total",
		Help: "Webhook notifications received, by provider.",
	}, []string{"provider"})

	WebhooksUnresolvable = promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmacia_payment_webhooks_unresolvable_total",
		Help: "Webhook notifications that did not resolve to a payment.",
	})
)
