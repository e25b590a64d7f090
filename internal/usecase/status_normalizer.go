package usecase

import (
	"strings"

	"farmacia_xpto/internal/domain/entities"
)

// Per-provider lookup from raw provider status to canonical status. Raw
// values are lowercased/trimmed before lookup; anything not in the table maps
// to desconhecido rather than failing, so an unexpected vocabulary change on
// the provider side degrades to "we don't know yet" instead of an error.

var mercadoPagoStatusTable = map[string]entities.PaymentStatus{
	"pending":            entities.StatusPendente,
	"authorized":         entities.StatusAutorizado,
	"in_process":         entities.StatusProcessando,
	"in_mediation":       entities.StatusProcessando,
	"approved":           entities.StatusAprovado,
	"rejected":           entities.StatusRejeitado,
	"cancelled":          entities.StatusCancelado,
	"refunded":           entities.StatusReembolsado,
	"partially_refunded": entities.StatusReembolsado,
	"charged_back":       entities.StatusContestado,
}

var pagSeguroStatusTable = map[string]entities.PaymentStatus{
	"waiting":     entities.StatusPendente,
	"in_analysis": entities.StatusProcessando,
	"authorized":  entities.StatusAutorizado,
	"paid":        entities.StatusAprovado,
	"declined":    entities.StatusRejeitado,
	"canceled":    entities.StatusCancelado,
	"refunded":    entities.StatusReembolsado,
	"chargeback":  entities.StatusContestado,
}

// The simulado provider speaks the canonical vocabulary directly.
var simuladoStatusTable = map[string]entities.PaymentStatus{
	"pendente":     entities.StatusPendente,
	"autorizado":   entities.StatusAutorizado,
	"processando":  entities.StatusProcessando,
	"aprovado":     entities.StatusAprovado,
	"rejeitado":    entities.StatusRejeitado,
	"cancelado":    entities.StatusCancelado,
	"reembolsado":  entities.StatusReembolsado,
	"contestado":   entities.StatusContestado,
	"desconhecido": entities.StatusDesconhecido,
}

var providerStatusTables = map[entities.PaymentProvider]map[string]entities.PaymentStatus{
	entities.ProviderMercadoPago: mercadoPagoStatusTable,
	entities.ProviderPagSeguro:   pagSeguroStatusTable,
	entities.ProviderSimulado:    simuladoStatusTable,
}

// NormalizeStatus maps a provider's raw status string to the canonical
// status. The mapping is total and idempotent: the same raw value always
// lands in the same bucket.
func NormalizeStatus(provider entities.PaymentProvider, raw string) entities.PaymentStatus {
	table, ok := providerStatusTables[provider]
	if !ok {
		return entities.StatusDesconhecido
	}
	if status, ok := table[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status
	}
	return entities.StatusDesconhecido
}
