package routes

import (
	"farmacia_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/:payment_id", paymentHandler.CheckStatus)
		payments.POST("/:payment_id/refund", paymentHandler.RefundPayment)
		payments.POST("/:payment_id/approve", paymentHandler.ApprovePayment)
		payments.POST("/:payment_id/reject", paymentHandler.RejectPayment)
		payments.GET("/order/:order_id", paymentHandler.GetPaymentByOrderID)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/:provider", webhookHandler.Receive)
	}
}
