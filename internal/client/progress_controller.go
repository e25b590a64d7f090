package client

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase"
)

// ProgressState is the client-side view of a payment attempt. It is not the
// canonical payment status: StateTimeout only means this session stopped
// waiting, the server record stays pendente and may still resolve through a
// webhook later.
type ProgressState string

const (
	StateIdle      ProgressState = "idle"
	StateCreating  ProgressState = "creating"
	StatePending   ProgressState = "pending"
	StateAprovado  ProgressState = "aprovado"
	StateRejeitado ProgressState = "rejeitado"
	StateCancelado ProgressState = "cancelado"
	StateTimeout   ProgressState = "timeout"
	StateClosed    ProgressState = "closed"
)

var (
	ErrAlreadyStarted = errors.New("client: progress controller already started")
	ErrNotStarted     = errors.New("client: progress controller not started")
	ErrNotPending     = errors.New("client: manual decision only valid while pending")
)

const (
	defaultPollInterval = 2 * time.Second
	defaultBudget       = 2 * time.Minute
	defaultGraceDelay   = 5 * time.Second
)

// Config tunes the polling session.
type Config struct {
	// PollInterval between status checks against the server.
	PollInterval time.Duration
	// Budget is the total wait before the session gives up with StateTimeout.
	Budget time.Duration
	// GraceDelay keeps a terminal state visible before auto-closing.
	GraceDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.Budget <= 0 {
		c.Budget = defaultBudget
	}
	if c.GraceDelay <= 0 {
		c.GraceDelay = defaultGraceDelay
	}
	return c
}

// Update is pushed on the Updates channel on every state change.
type Update struct {
	State   ProgressState
	Payment entities.Payment
}

// ProgressController drives the counter screen for a single payment attempt:
// it creates the payment, polls its status on a ticker until a decisive
// status or the budget runs out, and tears everything down together. All
// lifecycle paths funnel through one mutex-guarded transition so late poll
// responses can never resurrect a finished session.
type ProgressController struct {
	payments usecase.IPaymentUseCase
	cfg      Config

	mu         sync.Mutex
	state      ProgressState
	payment    entities.Payment
	cancel     context.CancelFunc
	graceTimer *time.Timer

	updates chan Update
}

func NewProgressController(payments usecase.IPaymentUseCase, cfg Config) *ProgressController {
	return &ProgressController{
		payments: payments,
		cfg:      cfg.withDefaults(),
		state:    StateIdle,
		updates:  make(chan Update, 16),
	}
}

// Updates delivers state changes for rendering. Sends never block: when the
// consumer lags, intermediate updates are dropped and only the latest states
// arrive.
func (c *ProgressController) Updates() <-chan Update {
	return c.updates
}

func (c *ProgressController) State() ProgressState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *ProgressController) PaymentID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payment.ID
}

// Start creates the payment and begins polling. The controller is single
// shot: one Start per instance.
func (c *ProgressController) Start(ctx context.Context, input usecase.CreatePaymentInput) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	sessionCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.setStateLocked(StateCreating)
	c.mu.Unlock()

	out, err := c.payments.Create(sessionCtx, input)
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.closeLocked()
		return err
	}

	c.mu.Lock()
	if c.state != StateCreating {
		// Closed while the create call was in flight.
		c.mu.Unlock()
		return nil
	}
	c.payment = out.Payment
	if !c.applyPaymentLocked(out.Payment) {
		c.setStateLocked(StatePending)
		go c.poll(sessionCtx)
	}
	c.mu.Unlock()
	return nil
}

// Approve records the operator decision. Only valid while pending, and only
// for providers with a manual override.
func (c *ProgressController) Approve(ctx context.Context) error {
	return c.decide(ctx, true)
}

// Reject records the operator decision. Only valid while pending.
func (c *ProgressController) Reject(ctx context.Context) error {
	return c.decide(ctx, false)
}

func (c *ProgressController) decide(ctx context.Context, approve bool) error {
	c.mu.Lock()
	if c.state != StatePending {
		c.mu.Unlock()
		return ErrNotPending
	}
	paymentID := c.payment.ID
	c.mu.Unlock()

	p, err := c.payments.ManualOverride(ctx, paymentID, approve)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePending {
		return nil
	}
	c.payment = p
	c.applyPaymentLocked(p)
	return nil
}

// Close tears the session down: poll and countdown stop, state goes to
// closed. Safe to call at any time, from any state.
func (c *ProgressController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

func (c *ProgressController) poll(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()
	countdown := time.NewTimer(c.cfg.Budget)
	defer countdown.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-countdown.C:
			c.mu.Lock()
			if c.state == StatePending {
				log.Printf("[client][progress] budget exhausted payment_id=%s", c.payment.ID)
				c.terminalLocked(StateTimeout)
			}
			c.mu.Unlock()
			return
		case <-ticker.C:
			c.mu.Lock()
			paymentID := c.payment.ID
			c.mu.Unlock()

			p, err := c.payments.CheckStatus(ctx, paymentID)
			if ctx.Err() != nil {
				// Session ended while the call was in flight.
				return
			}
			if err != nil {
				log.Printf("[client][progress] check-status failed payment_id=%s err=%v", paymentID, err)
				continue
			}

			c.mu.Lock()
			if c.state != StatePending {
				c.mu.Unlock()
				return
			}
			c.payment = p
			done := c.applyPaymentLocked(p)
			c.mu.Unlock()
			if done {
				return
			}
		}
	}
}

// applyPaymentLocked maps a decisive payment status to a client terminal
// state. Returns true when the session is over. Caller holds c.mu.
func (c *ProgressController) applyPaymentLocked(p entities.Payment) bool {
	switch p.Status {
	case entities.StatusAprovado:
		c.terminalLocked(StateAprovado)
	case entities.StatusRejeitado:
		c.terminalLocked(StateRejeitado)
	case entities.StatusCancelado:
		c.terminalLocked(StateCancelado)
	default:
		return false
	}
	return true
}

func (c *ProgressController) terminalLocked(state ProgressState) {
	if c.cancel != nil {
		c.cancel()
	}
	c.setStateLocked(state)
	c.graceTimer = time.AfterFunc(c.cfg.GraceDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state != StateClosed {
			c.setStateLocked(StateClosed)
		}
	})
}

func (c *ProgressController) closeLocked() {
	if c.state == StateClosed {
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	if c.graceTimer != nil {
		c.graceTimer.Stop()
	}
	c.setStateLocked(StateClosed)
}

func (c *ProgressController) setStateLocked(state ProgressState) {
	if c.state == state {
		return
	}
	log.Printf("[client][progress] state %s -> %s payment_id=%s", c.state, state, c.payment.ID)
	c.state = state
	select {
	case c.updates <- Update{State: state, Payment: c.payment}:
	default:
	}
}
