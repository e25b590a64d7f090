package entities

import "time"

// OrderStatus mirrors the lifecycle the order service keeps for a sale.
//
// The payment subsystem does not own orders; it only reads them before
// creating a charge and flips the status as a side effect of a payment
// reaching a terminal outcome.

type OrderStatus string

const (
	OrderStatusPendente            OrderStatus = "pendente"
	OrderStatusAguardandoPagamento OrderStatus = "aguardando_pagamento"
	OrderStatusFinalizada          OrderStatus = "finalizada"
	OrderStatusCancelada           OrderStatus = "cancelada"
)

// Order is the referenced sale record (table `orders`, PK: id). Only the
// fields a payment touches are modeled here; the rest of the row belongs to
// the back-office CRUD.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id,omitempty"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
