package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"farmacia_xpto/internal/adapter/http/dto/request"
	"farmacia_xpto/internal/adapter/http/dto/response"
	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase"
	"farmacia_xpto/internal/usecase/interfaces"
	"farmacia_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// callerHeader carries the opaque caller identity forwarded by the session
// layer upstream.
const callerHeader = "X-Caller-ID"

// PaymentHandler handles HTTP requests for payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment creates a charge for an order through the chosen provider.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start order_id=%s provider=%s", req.OrderID, req.Provider)

	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	out, err := h.usecase.Create(c.Request.Context(), usecase.CreatePaymentInput{
		CallerID: c.GetHeader(callerHeader),
		OrderID:  req.OrderID,
		Provider: entities.PaymentProvider(req.Provider),
		Amount:   req.Amount,
		Currency: req.Currency,
		Items:    items,
		Customer: entities.Customer{
			ID:       req.Customer.ID,
			Name:     req.Customer.Name,
			Email:    req.Customer.Email,
			Document: req.Customer.Document,
		},
		Metadata: req.Metadata,
	})
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", req.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s payment_id=%s status=%s", req.OrderID, out.Payment.ID, out.Payment.Status)

	c.JSON(http.StatusCreated, response.FromCreateOutput(out))
}

// CheckStatus refreshes a payment against its provider and returns the
// canonical record; on provider outage the last persisted state comes back.
func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] check-status start payment_id=%s", paymentID)

	p, err := h.usecase.CheckStatus(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] check-status failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] check-status success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// RefundPayment refunds an approved payment, fully or partially.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	// The body is optional: no body means a full refund.
	var req request.RefundPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[payment][handler] refund invalid payload payment_id=%s err=%v", paymentID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund start payment_id=%s amount=%.2f", paymentID, req.Amount)

	p, err := h.usecase.Refund(c.Request.Context(), paymentID, req.Amount)
	if err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ApprovePayment is the operator override for the simulado provider.
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	h.override(c, true)
}

// RejectPayment is the operator override for the simulado provider.
func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	h.override(c, false)
}

func (h *PaymentHandler) override(c *gin.Context, approve bool) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] override start payment_id=%s approve=%t", paymentID, approve)

	p, err := h.usecase.ManualOverride(c.Request.Context(), paymentID, approve)
	if err != nil {
		log.Printf("[payment][handler] override failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] override success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPaymentByOrderID returns the latest payment for an order.
func (h *PaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] get-by-order start order_id=%s", orderID)

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] get-by-order failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-order not-found order_id=%s", orderID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-order success order_id=%s payment_id=%s status=%s", orderID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownProvider):
		return pkg.NewDomainErrorSimple("UNKNOWN_PROVIDER", "Unknown payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCallerNotAllowed):
		return pkg.NewDomainErrorSimple("CALLER_NOT_ALLOWED", "Caller is not allowed to pay this order", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflictingPayment):
		return pkg.NewDomainErrorSimple("CONFLICTING_PAYMENT", "Order already has an active payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundNotAllowed):
		return pkg.NewDomainErrorSimple("REFUND_NOT_ALLOWED", "Refund is only allowed for approved payments", http.StatusConflict)
	case errors.Is(err, usecase.ErrManualOverrideNotSupported):
		return pkg.NewDomainErrorSimple("OVERRIDE_NOT_SUPPORTED", "Provider does not support manual override", http.StatusConflict)
	case errors.Is(err, interfaces.ErrProviderRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrProviderUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable, try again", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
