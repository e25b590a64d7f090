package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrSimuladoChargeNotFound = errors.New("simulated charge not found")

// Scenario values accepted in Metadata["scenario"].
const (
	// ScenarioAprovar auto-approves after a couple of status fetches,
	// imitating a provider that settles shortly after creation.
	ScenarioAprovar = "aprovar"
	// ScenarioRejeitar auto-rejects after a couple of status fetches.
	ScenarioRejeitar = "rejeitar"
	// ScenarioTimeout keeps the charge pendente until an operator overrides
	// it, used to exercise the client-side countdown.
	ScenarioTimeout = "timeout"
)

// How many fetches an auto-resolving scenario stays pendente for, so the
// client polling loop is observed in the pending state at least once.
const simuladoFetchesBeforeResolve = 2

type simuladoCharge struct {
	orderID  string
	amount   float64
	status   string
	scenario string
	fetches  int
}

// SimuladoProvider is the non-live provider used for manual test flows. All
// charges live in process; an operator resolves them through Override unless
// the scenario auto-resolves. Its raw vocabulary is the canonical one.

type SimuladoProvider struct {
	mu      sync.Mutex
	charges map[string]*simuladoCharge
}

var (
	_ interfaces.IPaymentProvider        = (*SimuladoProvider)(nil)
	_ interfaces.IManualOverrideProvider = (*SimuladoProvider)(nil)
)

func NewSimuladoProvider() *SimuladoProvider {
	return &SimuladoProvider{charges: make(map[string]*simuladoCharge)}
}

func (g *SimuladoProvider) Name() entities.PaymentProvider {
	return entities.ProviderSimulado
}

func (g *SimuladoProvider) SupportsManualOverride() bool {
	return true
}

func (g *SimuladoProvider) CreateCharge(_ context.Context, in interfaces.CreateChargeInput) (interfaces.CreateChargeOutput, error) {
	id := "sim_" + uuid.NewString()
	g.mu.Lock()
	g.charges[id] = &simuladoCharge{
		orderID:  in.OrderID,
		amount:   in.Amount,
		status:   string(entities.StatusPendente),
		scenario: in.Metadata["scenario"],
	}
	g.mu.Unlock()

	log.Printf("[payment][simulado] create success order_id=%s external_id=%s scenario=%q", in.OrderID, id, in.Metadata["scenario"])
	return interfaces.CreateChargeOutput{
		ExternalID:  id,
		RawStatus:   string(entities.StatusPendente),
		RedirectURL: "simulado://pagamento/" + id,
	}, nil
}

func (g *SimuladoProvider) FetchStatus(_ context.Context, externalID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.charges[externalID]
	if !ok {
		return "", fmt.Errorf("%w: %v", interfaces.ErrProviderRejected, ErrSimuladoChargeNotFound)
	}

	c.fetches++
	if c.status == string(entities.StatusPendente) && c.fetches >= simuladoFetchesBeforeResolve {
		switch c.scenario {
		case ScenarioAprovar:
			c.status = string(entities.StatusAprovado)
		case ScenarioRejeitar:
			c.status = string(entities.StatusRejeitado)
		}
	}
	return c.status, nil
}

func (g *SimuladoProvider) Refund(_ context.Context, externalID string, amount float64) (interfaces.RefundOutput, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.charges[externalID]
	if !ok {
		return interfaces.RefundOutput{}, fmt.Errorf("%w: %v", interfaces.ErrProviderRejected, ErrSimuladoChargeNotFound)
	}
	if c.status != string(entities.StatusAprovado) {
		return interfaces.RefundOutput{}, fmt.Errorf("%w: charge is %s, not aprovado", interfaces.ErrProviderRejected, c.status)
	}
	c.status = string(entities.StatusReembolsado)

	return interfaces.RefundOutput{
		RefundID:       "ref_" + uuid.NewString(),
		RefundedAmount: amount,
		RawStatus:      string(entities.StatusReembolsado),
	}, nil
}

// Override is the operator intervention behind the back-office approve/reject
// buttons.
func (g *SimuladoProvider) Override(_ context.Context, externalID string, approve bool) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.charges[externalID]
	if !ok {
		return "", fmt.Errorf("%w: %v", interfaces.ErrProviderRejected, ErrSimuladoChargeNotFound)
	}
	if approve {
		c.status = string(entities.StatusAprovado)
	} else {
		c.status = string(entities.StatusRejeitado)
	}
	log.Printf("[payment][simulado] override external_id=%s status=%s", externalID, c.status)
	return c.status, nil
}

// simuladoWebhook lets tests and manual curl flows push notifications the
// same way live providers do.
type simuladoWebhook struct {
	ExternalID string  `json:"external_id"`
	Status     string  `json:"status"`
	OrderRef   string  `json:"order_ref"`
	Amount     float64 `json:"amount"`
}

func (g *SimuladoProvider) ParseWebhook(payload []byte) (interfaces.WebhookNotification, error) {
	var n simuladoWebhook
	if err := json.Unmarshal(payload, &n); err != nil {
		return interfaces.WebhookNotification{}, fmt.Errorf("simulado webhook: %w", err)
	}
	if n.ExternalID == "" {
		return interfaces.WebhookNotification{}, errors.New("simulado webhook: missing external_id")
	}
	return interfaces.WebhookNotification{
		ExternalID: n.ExternalID,
		RawStatus:  n.Status,
		OrderRef:   n.OrderRef,
		Amount:     n.Amount,
	}, nil
}
