package request

// CreatePaymentRequest is the payload for "cria pagamento". Provider is one
// of the registered provider names (mercadopago, pagseguro, simulado);
// metadata forwards provider-specific hints such as payment_method_id or the
// simulado scenario.

type CreatePaymentRequest struct {
	OrderID  string                 `json:"order_id" binding:"required"`
	Provider string                 `json:"provider" binding:"required"`
	Amount   float64                `json:"amount" binding:"required,gt=0"`
	Currency string                 `json:"currency"`
	Items    []PaymentItemRequest   `json:"items"`
	Customer PaymentCustomerRequest `json:"customer"`
	Metadata map[string]string      `json:"metadata"`
}

type PaymentItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type PaymentCustomerRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

// RefundPaymentRequest is the optional body of the refund route; a missing
// or zero amount means a full refund.
type RefundPaymentRequest struct {
	Amount float64 `json:"amount"`
}
