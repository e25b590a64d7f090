package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/infrastructure/metrics"
	"farmacia_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrOrderNotFound              = errors.New("order not found")
	ErrInvalidOrderID             = errors.New("invalid order_id")
	ErrInvalidPaymentID           = errors.New("invalid payment id")
	ErrInvalidAmount              = errors.New("invalid amount")
	ErrInvalidCurrency            = errors.New("invalid currency")
	ErrUnknownProvider            = errors.New("unknown payment provider")
	ErrConflictingPayment         = errors.New("order already has an active payment")
	ErrOrderNotPayable            = errors.New("order is not payable")
	ErrRefundNotAllowed           = errors.New("refund only allowed for approved payments")
	ErrManualOverrideNotSupported = errors.New("provider does not support manual override")
	ErrCallerNotAllowed           = errors.New("caller not allowed to pay this order")
)

const (
	defaultCurrency = "BRL"

	// Retries after losing the conditional status write to a concurrent
	// poll/webhook. One re-read is usually enough; bounded to stay cheap.
	statusWriteRetries = 2
)

// CreatePaymentInput is the canonical create request.
type CreatePaymentInput struct {
	CallerID string
	OrderID  string
	Provider entities.PaymentProvider
	Amount   float64
	Currency string
	Items    []entities.OrderItem
	Customer entities.Customer
	Metadata map[string]string
}

// CreatePaymentOutput pairs the persisted payment with whatever the provider
// handed back for the client to continue checkout.
type CreatePaymentOutput struct {
	Payment      entities.Payment
	RedirectURL  string
	ClientSecret string
}

// IPaymentUseCase is the gateway orchestrator: it selects the adapter,
// enforces "at most one active payment per order" and exposes the
// create/check/refund/override operations. All status writes funnel through
// the transition table plus a conditional write keyed on the current status.

type IPaymentUseCase interface {
	Create(ctx context.Context, in CreatePaymentInput) (CreatePaymentOutput, error)
	CheckStatus(ctx context.Context, paymentID string) (entities.Payment, error)
	Refund(ctx context.Context, paymentID string, amount float64) (entities.Payment, error)
	ManualOverride(ctx context.Context, paymentID string, approve bool) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	orderRepo  interfaces.IOrderRepository
	providers  map[entities.PaymentProvider]interfaces.IPaymentProvider
	publisher  interfaces.IEventPublisher
	authorizer interfaces.IPaymentAuthorizer
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	orderRepo interfaces.IOrderRepository,
	providers map[entities.PaymentProvider]interfaces.IPaymentProvider,
	publisher interfaces.IEventPublisher,
	authorizer interfaces.IPaymentAuthorizer,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:       repo,
		orderRepo:  orderRepo,
		providers:  providers,
		publisher:  publisher,
		authorizer: authorizer,
	}
}

func (u *PaymentUseCase) provider(name entities.PaymentProvider) (interfaces.IPaymentProvider, error) {
	p, ok := u.providers[name]
	if !ok || p == nil {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

func (u *PaymentUseCase) Create(ctx context.Context, in CreatePaymentInput) (CreatePaymentOutput, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	log.Printf("[payment][usecase] create start order_id=%s provider=%s amount=%.2f", in.OrderID, in.Provider, in.Amount)

	if in.OrderID == "" {
		return CreatePaymentOutput{}, ErrInvalidOrderID
	}
	if in.Amount <= 0 {
		return CreatePaymentOutput{}, ErrInvalidAmount
	}
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = defaultCurrency
	}
	if len(in.Currency) != 3 {
		return CreatePaymentOutput{}, ErrInvalidCurrency
	}
	if !in.Provider.Valid() {
		return CreatePaymentOutput{}, ErrUnknownProvider
	}
	adapter, err := u.provider(in.Provider)
	if err != nil {
		return CreatePaymentOutput{}, err
	}

	if u.authorizer != nil {
		allowed, err := u.authorizer.CallerMayPay(ctx, in.CallerID, in.OrderID)
		if err != nil {
			log.Printf("[payment][usecase] authorizer failed order_id=%s err=%v", in.OrderID, err)
			return CreatePaymentOutput{}, err
		}
		if !allowed {
			log.Printf("[payment][usecase] caller not allowed order_id=%s caller_id=%s", in.OrderID, in.CallerID)
			return CreatePaymentOutput{}, ErrCallerNotAllowed
		}
	}

	order, err := u.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", in.OrderID, err)
		return CreatePaymentOutput{}, err
	}
	if order.ID == "" {
		return CreatePaymentOutput{}, ErrOrderNotFound
	}
	if order.Status == entities.OrderStatusFinalizada || order.Status == entities.OrderStatusCancelada {
		log.Printf("[payment][usecase] order not payable order_id=%s status=%s", in.OrderID, order.Status)
		return CreatePaymentOutput{}, ErrOrderNotPayable
	}

	// One active payment per order. A prior terminal-failed payment does not
	// block a retry; it is simply superseded by a new row.
	active, err := u.repo.GetActiveByOrderID(ctx, in.OrderID)
	if err != nil {
		return CreatePaymentOutput{}, err
	}
	if active.ID != "" {
		log.Printf("[payment][usecase] conflicting payment order_id=%s payment_id=%s status=%s", in.OrderID, active.ID, active.Status)
		return CreatePaymentOutput{}, ErrConflictingPayment
	}

	out, err := adapter.CreateCharge(ctx, interfaces.CreateChargeInput{
		OrderID:  in.OrderID,
		Amount:   in.Amount,
		Currency: in.Currency,
		Items:    in.Items,
		Customer: in.Customer,
		Metadata: in.Metadata,
	})
	if err != nil {
		log.Printf("[payment][usecase] provider create failed order_id=%s provider=%s err=%v", in.OrderID, in.Provider, err)
		return CreatePaymentOutput{}, err
	}
	log.Printf("[payment][usecase] provider create success order_id=%s provider=%s external_id=%s raw_status=%s", in.OrderID, in.Provider, out.ExternalID, out.RawStatus)

	now := time.Now().UTC()
	p := entities.Payment{
		ID:                uuid.NewString(),
		OrderID:           in.OrderID,
		Provider:          in.Provider,
		ExternalID:        out.ExternalID,
		Amount:            in.Amount,
		Currency:          in.Currency,
		Status:            entities.StatusPendente,
		RawProviderStatus: out.RawStatus,
		CreatedAt:         now,
		LastUpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment create failed order_id=%s err=%v", in.OrderID, err)
		return CreatePaymentOutput{}, err
	}
	metrics.PaymentsCreated.WithLabelValues(string(in.Provider)).Inc()

	if _, err := u.orderRepo.UpdateStatus(ctx, in.OrderID, entities.OrderStatusAguardandoPagamento); err != nil {
		// The payment exists; the order status catches up on the next
		// transition. Log only.
		log.Printf("[payment][usecase] order status update failed order_id=%s err=%v", in.OrderID, err)
	}

	// Some providers settle synchronously (Mercado Pago can answer
	// "approved" on create). Run the raw status through the normal
	// transition path so side effects fire exactly like a poll would.
	if proposed := NormalizeStatus(in.Provider, out.RawStatus); proposed != entities.StatusPendente && proposed != entities.StatusDesconhecido {
		created, err = u.applyStatus(ctx, created, out.RawStatus, proposed, nil)
		if err != nil {
			return CreatePaymentOutput{}, err
		}
	}

	log.Printf("[payment][usecase] create success order_id=%s payment_id=%s status=%s", in.OrderID, created.ID, created.Status)
	return CreatePaymentOutput{Payment: created, RedirectURL: out.RedirectURL, ClientSecret: out.ClientSecret}, nil
}

func (u *PaymentUseCase) CheckStatus(ctx context.Context, paymentID string) (entities.Payment, error) {
	p, err := u.getPayment(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status.IsTerminal() {
		return p, nil
	}

	adapter, err := u.provider(p.Provider)
	if err != nil {
		return entities.Payment{}, err
	}

	raw, err := adapter.FetchStatus(ctx, p.ExternalID)
	if err != nil {
		// Status checks must survive transient provider outages: answer with
		// the last persisted state instead of propagating the failure.
		log.Printf("[payment][usecase] fetch status failed payment_id=%s provider=%s err=%v", p.ID, p.Provider, err)
		return p, nil
	}

	return u.applyStatus(ctx, p, raw, NormalizeStatus(p.Provider, raw), nil)
}

func (u *PaymentUseCase) Refund(ctx context.Context, paymentID string, amount float64) (entities.Payment, error) {
	p, err := u.getPayment(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.StatusAprovado {
		log.Printf("[payment][usecase] refund not allowed payment_id=%s status=%s", p.ID, p.Status)
		return entities.Payment{}, ErrRefundNotAllowed
	}
	if amount <= 0 {
		amount = p.Amount
	}
	if amount > p.Amount {
		return entities.Payment{}, ErrInvalidAmount
	}

	adapter, err := u.provider(p.Provider)
	if err != nil {
		return entities.Payment{}, err
	}

	out, err := adapter.Refund(ctx, p.ExternalID, amount)
	if err != nil {
		log.Printf("[payment][usecase] provider refund failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] provider refund success payment_id=%s refund_id=%s amount=%.2f", p.ID, out.RefundID, out.RefundedAmount)

	refund := &entities.Refund{
		RefundID:       out.RefundID,
		RefundedAmount: out.RefundedAmount,
		RawStatus:      out.RawStatus,
	}
	raw := out.RawStatus
	if raw == "" {
		raw = "refunded"
	}
	return u.applyStatus(ctx, p, raw, entities.StatusReembolsado, refund)
}

func (u *PaymentUseCase) ManualOverride(ctx context.Context, paymentID string, approve bool) (entities.Payment, error) {
	p, err := u.getPayment(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	adapter, err := u.provider(p.Provider)
	if err != nil {
		return entities.Payment{}, err
	}
	if !adapter.SupportsManualOverride() {
		return entities.Payment{}, ErrManualOverrideNotSupported
	}

	proposed := entities.StatusAprovado
	raw := string(entities.StatusAprovado)
	if !approve {
		proposed = entities.StatusRejeitado
		raw = string(entities.StatusRejeitado)
	}

	// Keep the provider-side ledger in agreement so a later FetchStatus does
	// not report something older than the override.
	if overrider, ok := adapter.(interfaces.IManualOverrideProvider); ok {
		if overrideRaw, err := overrider.Override(ctx, p.ExternalID, approve); err != nil {
			log.Printf("[payment][usecase] provider override failed payment_id=%s err=%v", p.ID, err)
		} else if overrideRaw != "" {
			raw = overrideRaw
		}
	}

	log.Printf("[payment][usecase] manual override payment_id=%s approve=%t", p.ID, approve)
	return u.applyStatus(ctx, p, raw, proposed, nil)
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *PaymentUseCase) getPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// applyStatus runs a proposed canonical status through the transition table
// and persists it with a conditional write keyed on the status the payment
// was read at. Losing the conditional write means a concurrent poll/webhook
// applied a transition first; we re-read and re-evaluate, so each legal edge
// is applied exactly once process-wide and side effects fire once.
func (u *PaymentUseCase) applyStatus(ctx context.Context, p entities.Payment, rawStatus string, proposed entities.PaymentStatus, refund *entities.Refund) (entities.Payment, error) {
	for attempt := 0; ; attempt++ {
		next, err := entities.ApplyTransition(p.Status, proposed)
		if err != nil {
			log.Printf("[payment][usecase] stale transition discarded payment_id=%s current=%s proposed=%s raw=%s", p.ID, p.Status, proposed, rawStatus)
			metrics.StaleTransitions.Inc()
			return p, nil
		}

		upd := interfaces.PaymentUpdate{Status: next, RawStatus: rawStatus, Refund: refund}
		if next == entities.StatusAprovado && p.ApprovedAt == nil {
			now := time.Now().UTC()
			upd.ApprovedAt = &now
		}

		updated, err := u.repo.UpdateStatus(ctx, p.ID, p.Status, upd)
		if errors.Is(err, interfaces.ErrStatusConflict) {
			log.Printf("[payment][usecase] concurrent status write payment_id=%s expected=%s attempt=%d", p.ID, p.Status, attempt+1)
			fresh, readErr := u.repo.GetByID(ctx, p.ID)
			if readErr != nil {
				return entities.Payment{}, readErr
			}
			if attempt >= statusWriteRetries {
				return fresh, nil
			}
			p = fresh
			continue
		}
		if err != nil {
			return entities.Payment{}, err
		}

		log.Printf("[payment][usecase] transition applied payment_id=%s from=%s to=%s raw=%s", p.ID, p.Status, next, rawStatus)
		metrics.TransitionsApplied.WithLabelValues(string(next)).Inc()
		u.afterTransition(ctx, updated)
		return updated, nil
	}
}

// afterTransition runs the order side effects and event fan-out for the
// request that won the conditional write.
func (u *PaymentUseCase) afterTransition(ctx context.Context, p entities.Payment) {
	switch p.Status {
	case entities.StatusAprovado:
		metrics.PaymentsApproved.WithLabelValues(string(p.Provider)).Inc()
		u.setOrderStatus(ctx, p.OrderID, entities.OrderStatusFinalizada)
		u.publishResolved(ctx, p)
	case entities.StatusRejeitado, entities.StatusCancelado:
		u.setOrderStatus(ctx, p.OrderID, entities.OrderStatusCancelada)
		u.publishResolved(ctx, p)
	case entities.StatusReembolsado, entities.StatusContestado:
		u.publishResolved(ctx, p)
	}
}

func (u *PaymentUseCase) setOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) {
	if _, err := u.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		log.Printf("[payment][usecase] order status update failed order_id=%s status=%s err=%v", orderID, status, err)
	}
}

func (u *PaymentUseCase) publishResolved(ctx context.Context, p entities.Payment) {
	if u.publisher == nil {
		return
	}
	evt := interfaces.PaymentResolvedEvent{
		PaymentID:  p.ID,
		OrderID:    p.OrderID,
		Provider:   string(p.Provider),
		Status:     string(p.Status),
		Amount:     p.Amount,
		OccurredAt: time.Now().UTC(),
	}
	if err := u.publisher.PublishPaymentResolved(ctx, evt); err != nil {
		log.Printf("[payment][usecase] event publish failed payment_id=%s err=%v", p.ID, err)
	}
}
