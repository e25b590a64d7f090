package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/infrastructure/metrics"
)

// ErrUnresolvableWebhook marks a notification that cannot be matched to any
// payment. Logged for manual investigation; the ack policy below keeps the
// provider from retrying such a reference forever.
var ErrUnresolvableWebhook = errors.New("webhook does not resolve to a known payment")

// A reference that never resolves is rejected this many times (so the
// provider retries while we might simply be behind) and then acknowledged to
// stop the retry loop.
const maxUnresolvableAttempts = 3

// WebhookResult is the answer to the provider: ack true stops redelivery.
type WebhookResult struct {
	Ack    bool
	Reason string
}

// IWebhookUseCase ingests asynchronous provider notifications. Delivery is
// at-least-once and may race or reorder against client polls; idempotency
// comes from the same transition-table path CheckStatus uses.

type IWebhookUseCase interface {
	Receive(ctx context.Context, provider entities.PaymentProvider, payload []byte) (WebhookResult, error)
}

type WebhookUseCase struct {
	payments *PaymentUseCase

	mu                   sync.Mutex
	unresolvableAttempts map[string]int
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(payments *PaymentUseCase) *WebhookUseCase {
	return &WebhookUseCase{
		payments:             payments,
		unresolvableAttempts: make(map[string]int),
	}
}

func (u *WebhookUseCase) Receive(ctx context.Context, provider entities.PaymentProvider, payload []byte) (WebhookResult, error) {
	log.Printf("[webhook][usecase] receive start provider=%s payload_len=%d", provider, len(payload))
	metrics.WebhooksReceived.WithLabelValues(string(provider)).Inc()

	adapter, err := u.payments.provider(provider)
	if err != nil {
		log.Printf("[webhook][usecase] unknown provider provider=%s", provider)
		return WebhookResult{Ack: false, Reason: "unknown provider"}, nil
	}

	notif, err := adapter.ParseWebhook(payload)
	if err != nil {
		log.Printf("[webhook][usecase] payload parse failed provider=%s err=%v", provider, err)
		return WebhookResult{Ack: false, Reason: "invalid payload"}, nil
	}
	if notif.ExternalID == "" {
		log.Printf("[webhook][usecase] payload without external id provider=%s", provider)
		return WebhookResult{Ack: false, Reason: "missing external id"}, nil
	}

	p, err := u.payments.repo.GetByExternalID(ctx, provider, notif.ExternalID)
	if err != nil {
		log.Printf("[webhook][usecase] payment lookup failed provider=%s external_id=%s err=%v", provider, notif.ExternalID, err)
		return WebhookResult{Ack: false, Reason: "lookup failed"}, err
	}
	if p.ID == "" {
		return u.handleUnresolvable(provider, notif.ExternalID), nil
	}
	u.clearAttempts(provider, notif.ExternalID)

	raw := notif.RawStatus
	if notif.RequiresFetch {
		raw, err = adapter.FetchStatus(ctx, notif.ExternalID)
		if err != nil {
			// Transient: reject so the provider redelivers once the outage
			// is over.
			log.Printf("[webhook][usecase] status fetch failed provider=%s external_id=%s err=%v", provider, notif.ExternalID, err)
			return WebhookResult{Ack: false, Reason: "provider unavailable"}, nil
		}
	}

	proposed := NormalizeStatus(provider, raw)
	updated, err := u.payments.applyStatus(ctx, p, raw, proposed, nil)
	if err != nil {
		log.Printf("[webhook][usecase] apply failed provider=%s payment_id=%s err=%v", provider, p.ID, err)
		return WebhookResult{Ack: false, Reason: "apply failed"}, err
	}

	// Replays and out-of-order deliveries land here with the status
	// unchanged; acknowledged all the same so the provider stops.
	log.Printf("[webhook][usecase] receive success provider=%s payment_id=%s status=%s raw=%s", provider, updated.ID, updated.Status, raw)
	return WebhookResult{Ack: true}, nil
}

func (u *WebhookUseCase) handleUnresolvable(provider entities.PaymentProvider, externalID string) WebhookResult {
	key := string(provider) + "#" + externalID
	u.mu.Lock()
	u.unresolvableAttempts[key]++
	attempts := u.unresolvableAttempts[key]
	if attempts >= maxUnresolvableAttempts {
		delete(u.unresolvableAttempts, key)
	}
	u.mu.Unlock()

	metrics.WebhooksUnresolvable.Inc()
	if attempts >= maxUnresolvableAttempts {
		// Give up: ack so the provider stops redelivering a permanently dead
		// reference. Kept in the logs for manual investigation.
		log.Printf("[webhook][usecase] unresolvable reference acked provider=%s external_id=%s attempts=%d err=%v", provider, externalID, attempts, ErrUnresolvableWebhook)
		return WebhookResult{Ack: true, Reason: "unresolvable reference"}
	}
	log.Printf("[webhook][usecase] unresolvable reference rejected provider=%s external_id=%s attempts=%d", provider, externalID, attempts)
	return WebhookResult{Ack: false, Reason: "unknown external id"}
}

func (u *WebhookUseCase) clearAttempts(provider entities.PaymentProvider, externalID string) {
	u.mu.Lock()
	delete(u.unresolvableAttempts, string(provider)+"#"+externalID)
	u.mu.Unlock()
}
