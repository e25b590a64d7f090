package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultMercadoPagoMethod = "pix"

// MercadoPagoConfig is passed explicitly at construction; adapters never read
// credentials from process-global state.
type MercadoPagoConfig struct {
	AccessToken     string
	NotificationURL string
}

// MercadoPagoProvider adapts the canonical contract to the Mercado Pago
// payments API via the official SDK. Mercado Pago notifies asynchronously:
// webhooks carry only the payment id, so ParseWebhook flags RequiresFetch.

type MercadoPagoProvider struct {
	payments        payment.Client
	refunds         refund.Client
	notificationURL string
}

var _ interfaces.IPaymentProvider = (*MercadoPagoProvider)(nil)

func NewMercadoPagoProvider(cfg MercadoPagoConfig) (*MercadoPagoProvider, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		log.Printf("[payment][mercadopago] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")
	return &MercadoPagoProvider{
		payments:        payment.NewClient(sdkCfg),
		refunds:         refund.NewClient(sdkCfg),
		notificationURL: cfg.NotificationURL,
	}, nil
}

func (g *MercadoPagoProvider) Name() entities.PaymentProvider {
	return entities.ProviderMercadoPago
}

func (g *MercadoPagoProvider) SupportsManualOverride() bool {
	return false
}

func (g *MercadoPagoProvider) CreateCharge(ctx context.Context, in interfaces.CreateChargeInput) (interfaces.CreateChargeOutput, error) {
	method := in.Metadata["payment_method_id"]
	if method == "" {
		method = defaultMercadoPagoMethod
	}

	req := payment.Request{
		TransactionAmount: in.Amount,
		Description:       fmt.Sprintf("Pedido %s", in.OrderID),
		ExternalReference: in.OrderID,
		PaymentMethodID:   method,
		NotificationURL:   g.notificationURL,
	}
	if in.Customer.Email != "" {
		req.Payer = &payment.PayerRequest{Email: in.Customer.Email}
	}

	log.Printf("[payment][mercadopago] create start order_id=%s amount=%.2f method=%s", in.OrderID, in.Amount, method)
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][mercadopago] create failed order_id=%s err=%v", in.OrderID, err)
		return interfaces.CreateChargeOutput{}, translateMercadoPagoError(err)
	}
	log.Printf("[payment][mercadopago] create success order_id=%s provider_payment_id=%d provider_status=%s", in.OrderID, resp.ID, resp.Status)

	return interfaces.CreateChargeOutput{
		ExternalID:   strconv.Itoa(resp.ID),
		RawStatus:    resp.Status,
		RedirectURL:  resp.PointOfInteraction.TransactionData.TicketURL,
		ClientSecret: resp.PointOfInteraction.TransactionData.QRCode,
	}, nil
}

func (g *MercadoPagoProvider) FetchStatus(ctx context.Context, externalID string) (string, error) {
	id, err := strconv.Atoi(externalID)
	if err != nil {
		return "", fmt.Errorf("%w: malformed external id %q", interfaces.ErrProviderRejected, externalID)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return "", translateMercadoPagoError(err)
	}
	return resp.Status, nil
}

func (g *MercadoPagoProvider) Refund(ctx context.Context, externalID string, amount float64) (interfaces.RefundOutput, error) {
	id, err := strconv.Atoi(externalID)
	if err != nil {
		return interfaces.RefundOutput{}, fmt.Errorf("%w: malformed external id %q", interfaces.ErrProviderRejected, externalID)
	}

	log.Printf("[payment][mercadopago] refund start provider_payment_id=%d amount=%.2f", id, amount)
	resp, err := g.refunds.CreatePartialRefund(ctx, id, amount)
	if err != nil {
		log.Printf("[payment][mercadopago] refund failed provider_payment_id=%d err=%v", id, err)
		return interfaces.RefundOutput{}, translateMercadoPagoError(err)
	}
	log.Printf("[payment][mercadopago] refund success provider_payment_id=%d refund_id=%d", id, resp.ID)

	return interfaces.RefundOutput{
		RefundID:       strconv.Itoa(resp.ID),
		RefundedAmount: resp.Amount,
		RawStatus:      "refunded",
	}, nil
}

// mercadoPagoWebhook is the notification envelope Mercado Pago posts; the
// payload only references the payment, the current status must be fetched.
type mercadoPagoWebhook struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (g *MercadoPagoProvider) ParseWebhook(payload []byte) (interfaces.WebhookNotification, error) {
	var n mercadoPagoWebhook
	if err := json.Unmarshal(payload, &n); err != nil {
		return interfaces.WebhookNotification{}, fmt.Errorf("mercadopago webhook: %w", err)
	}
	if n.Type != "payment" || n.Data.ID == "" {
		return interfaces.WebhookNotification{}, fmt.Errorf("mercadopago webhook: unsupported notification type=%q", n.Type)
	}
	return interfaces.WebhookNotification{
		ExternalID:    n.Data.ID,
		RequiresFetch: true,
	}, nil
}

// The SDK surfaces API failures as errors embedding the response body; we
// classify by the embedded HTTP status the same way the rest of the codebase
// string-matches gateway errors.
func translateMercadoPagoError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"status\":400"),
		strings.Contains(msg, "\"status\":401"),
		strings.Contains(msg, "\"status\":403"),
		strings.Contains(msg, "\"status\":404"),
		strings.Contains(msg, "cc_rejected"):
		return fmt.Errorf("%w: %v", interfaces.ErrProviderRejected, err)
	default:
		return fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}
}
