package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase/interfaces"
)

var ErrMissingPagSeguroToken = errors.New("missing PAGSEGURO_TOKEN")

const (
	defaultPagSeguroBaseURL = "https://api.pagseguro.com"
	pagSeguroTimeout        = 10 * time.Second

	// PagSeguro caps card installments for low-ticket charges; pharmacy
	// orders stay inside the conservative limit.
	pagSeguroMaxInstallments = 6
)

// PagSeguroConfig is passed explicitly at construction.
type PagSeguroConfig struct {
	Token           string
	BaseURL         string
	NotificationURL string
}

// PagSeguroProvider adapts the canonical contract to the PagSeguro charges
// API over plain HTTP. PagSeguro wants amounts in integer centavos and pushes
// webhooks that carry the full charge, so no follow-up fetch is needed.

type PagSeguroProvider struct {
	httpClient      *http.Client
	token           string
	baseURL         string
	notificationURL string
}

var _ interfaces.IPaymentProvider = (*PagSeguroProvider)(nil)

func NewPagSeguroProvider(cfg PagSeguroConfig, client *http.Client) (*PagSeguroProvider, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		log.Printf("[payment][pagseguro] missing token")
		return nil, ErrMissingPagSeguroToken
	}
	if client == nil {
		client = &http.Client{Timeout: pagSeguroTimeout}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultPagSeguroBaseURL
	}
	log.Printf("[payment][pagseguro] client initialized base_url=%s", baseURL)
	return &PagSeguroProvider{
		httpClient:      client,
		token:           cfg.Token,
		baseURL:         strings.TrimRight(baseURL, "/"),
		notificationURL: cfg.NotificationURL,
	}, nil
}

func (g *PagSeguroProvider) Name() entities.PaymentProvider {
	return entities.ProviderPagSeguro
}

func (g *PagSeguroProvider) SupportsManualOverride() bool {
	return false
}

type pagSeguroAmount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

type pagSeguroChargeRequest struct {
	ReferenceID      string             `json:"reference_id"`
	Description      string             `json:"description"`
	Amount           pagSeguroAmount    `json:"amount"`
	PaymentMethod    pagSeguroMethod    `json:"payment_method"`
	NotificationURLs []string           `json:"notification_urls,omitempty"`
	Customer         *pagSeguroCustomer `json:"customer,omitempty"`
	Items            []pagSeguroItem    `json:"items,omitempty"`
}

type pagSeguroMethod struct {
	Type         string `json:"type"`
	Installments int    `json:"installments,omitempty"`
}

type pagSeguroCustomer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	TaxID string `json:"tax_id,omitempty"`
}

type pagSeguroItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_amount"`
}

type pagSeguroCharge struct {
	ID          string          `json:"id"`
	ReferenceID string          `json:"reference_id"`
	Status      string          `json:"status"`
	Amount      pagSeguroAmount `json:"amount"`
	Links       []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
}

type pagSeguroError struct {
	ErrorMessages []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error_messages"`
}

// toCentavos scales a decimal BRL amount to PagSeguro's integer minor units.
func toCentavos(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (g *PagSeguroProvider) CreateCharge(ctx context.Context, in interfaces.CreateChargeInput) (interfaces.CreateChargeOutput, error) {
	method := strings.ToUpper(in.Metadata["payment_method"])
	if method == "" || method == "BOLETO" {
		// Boleto settles in days; the pharmacy front desk needs an answer
		// while the customer waits, so it is excluded here.
		method = "PIX"
	}
	installments := 1
	if method == "CREDIT_CARD" {
		installments = pagSeguroMaxInstallments
	}

	req := pagSeguroChargeRequest{
		ReferenceID: in.OrderID,
		Description: fmt.Sprintf("Pedido %s", in.OrderID),
		Amount:      pagSeguroAmount{Value: toCentavos(in.Amount), Currency: in.Currency},
		PaymentMethod: pagSeguroMethod{
			Type:         method,
			Installments: installments,
		},
	}
	if g.notificationURL != "" {
		req.NotificationURLs = []string{g.notificationURL}
	}
	if in.Customer.Email != "" || in.Customer.Name != "" {
		req.Customer = &pagSeguroCustomer{
			Name:  in.Customer.Name,
			Email: in.Customer.Email,
			TaxID: in.Customer.Document,
		}
	}
	for _, item := range in.Items {
		req.Items = append(req.Items, pagSeguroItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: toCentavos(item.UnitPrice),
		})
	}

	log.Printf("[payment][pagseguro] create start order_id=%s amount_centavos=%d method=%s", in.OrderID, req.Amount.Value, method)
	var charge pagSeguroCharge
	if err := g.do(ctx, http.MethodPost, "/charges", req, &charge); err != nil {
		log.Printf("[payment][pagseguro] create failed order_id=%s err=%v", in.OrderID, err)
		return interfaces.CreateChargeOutput{}, err
	}
	log.Printf("[payment][pagseguro] create success order_id=%s charge_id=%s status=%s", in.OrderID, charge.ID, charge.Status)

	out := interfaces.CreateChargeOutput{
		ExternalID: charge.ID,
		RawStatus:  charge.Status,
	}
	for _, link := range charge.Links {
		if link.Rel == "PAY" {
			out.RedirectURL = link.Href
			break
		}
		if out.RedirectURL == "" && link.Rel == "SELF" {
			out.RedirectURL = link.Href
		}
	}
	return out, nil
}

func (g *PagSeguroProvider) FetchStatus(ctx context.Context, externalID string) (string, error) {
	var charge pagSeguroCharge
	if err := g.do(ctx, http.MethodGet, "/charges/"+externalID, nil, &charge); err != nil {
		return "", err
	}
	return charge.Status, nil
}

func (g *PagSeguroProvider) Refund(ctx context.Context, externalID string, amount float64) (interfaces.RefundOutput, error) {
	body := map[string]pagSeguroAmount{
		"amount": {Value: toCentavos(amount), Currency: "BRL"},
	}
	log.Printf("[payment][pagseguro] refund start charge_id=%s amount_centavos=%d", externalID, toCentavos(amount))
	var charge pagSeguroCharge
	if err := g.do(ctx, http.MethodPost, "/charges/"+externalID+"/cancel", body, &charge); err != nil {
		log.Printf("[payment][pagseguro] refund failed charge_id=%s err=%v", externalID, err)
		return interfaces.RefundOutput{}, err
	}
	log.Printf("[payment][pagseguro] refund success charge_id=%s status=%s", externalID, charge.Status)

	return interfaces.RefundOutput{
		RefundID:       charge.ID,
		RefundedAmount: amount,
		RawStatus:      "refunded",
	}, nil
}

// PagSeguro webhooks post the charge object itself.
func (g *PagSeguroProvider) ParseWebhook(payload []byte) (interfaces.WebhookNotification, error) {
	var charge pagSeguroCharge
	if err := json.Unmarshal(payload, &charge); err != nil {
		return interfaces.WebhookNotification{}, fmt.Errorf("pagseguro webhook: %w", err)
	}
	if charge.ID == "" {
		return interfaces.WebhookNotification{}, errors.New("pagseguro webhook: missing charge id")
	}
	return interfaces.WebhookNotification{
		ExternalID: charge.ID,
		RawStatus:  charge.Status,
		OrderRef:   charge.ReferenceID,
		Amount:     float64(charge.Amount.Value) / 100,
	}, nil
}

func (g *PagSeguroProvider) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding request: %v", interfaces.ErrProviderRejected, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", interfaces.ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", interfaces.ErrProviderUnavailable, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: http %d", interfaces.ErrProviderUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		var apiErr pagSeguroError
		reason := "request declined"
		if json.Unmarshal(raw, &apiErr) == nil && len(apiErr.ErrorMessages) > 0 {
			reason = apiErr.ErrorMessages[0].Description
		}
		return fmt.Errorf("%w: http %d: %s", interfaces.ErrProviderRejected, resp.StatusCode, reason)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", interfaces.ErrProviderUnavailable, err)
		}
	}
	return nil
}
