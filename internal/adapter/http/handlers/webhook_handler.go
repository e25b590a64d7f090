package handlers

import (
	"log"
	"net/http"

	"farmacia_xpto/internal/adapter/http/dto/response"
	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous provider notifications. It always
// answers 200 with an ack flag: webhook endpoints must respond quickly and
// never 5xx on a malformed payload, otherwise providers retry forever.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) Receive(c *gin.Context) {
	provider := entities.PaymentProvider(c.Param("provider"))

	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed provider=%s err=%v", provider, err)
		c.JSON(http.StatusOK, response.WebhookAckResponse{Ack: false, Reason: "unreadable payload"})
		return
	}

	result, err := h.usecase.Receive(c.Request.Context(), provider, payload)
	if err != nil {
		// Internal failure: not acked, the provider redelivers.
		log.Printf("[webhook][handler] receive failed provider=%s err=%v", provider, err)
		c.JSON(http.StatusOK, response.WebhookAckResponse{Ack: false, Reason: "internal error"})
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Ack: result.Ack, Reason: result.Reason})
}
