package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"farmacia_xpto/internal/adapter/http/handlers"
	repository2 "farmacia_xpto/internal/adapter/persistence/repository"
	"farmacia_xpto/internal/domain/entities"
	"farmacia_xpto/internal/infrastructure/auth"
	"farmacia_xpto/internal/infrastructure/database"
	"farmacia_xpto/internal/infrastructure/events"
	"farmacia_xpto/internal/infrastructure/providers"
	"farmacia_xpto/internal/usecase"
	"farmacia_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	paymentUseCase := usecase.NewPaymentUseCase(
		paymentRepo,
		orderRepo,
		buildProviders(),
		buildPublisher(),
		auth.NewCallerAuthorizer(os.Getenv("PAYMENTS_REQUIRE_CALLER") == "true"),
	)
	webhookUseCase := usecase.NewWebhookUseCase(paymentUseCase)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
}

// buildProviders registers every adapter whose credentials are configured.
// The simulado provider is always present so counter flows work on any
// environment.
func buildProviders() map[entities.PaymentProvider]interfaces.IPaymentProvider {
	registry := map[entities.PaymentProvider]interfaces.IPaymentProvider{
		entities.ProviderSimulado: providers.NewSimuladoProvider(),
	}

	mp, err := providers.NewMercadoPagoProvider(providers.MercadoPagoConfig{
		AccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		NotificationURL: os.Getenv("MERCADOPAGO_NOTIFICATION_URL"),
	})
	if err != nil {
		log.Printf("Mercado Pago provider not configured: %v", err)
	} else {
		registry[entities.ProviderMercadoPago] = mp
	}

	ps, err := providers.NewPagSeguroProvider(providers.PagSeguroConfig{
		Token:           os.Getenv("PAGSEGURO_TOKEN"),
		BaseURL:         os.Getenv("PAGSEGURO_BASE_URL"),
		NotificationURL: os.Getenv("PAGSEGURO_NOTIFICATION_URL"),
	}, &http.Client{})
	if err != nil {
		log.Printf("PagSeguro provider not configured: %v", err)
	} else {
		registry[entities.ProviderPagSeguro] = ps
	}

	return registry
}

func buildPublisher() interfaces.IEventPublisher {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		log.Printf("KAFKA_BROKERS not set; payment events go to the log only")
		return events.NewLogPublisher()
	}
	publisher, err := events.NewKafkaPublisher(strings.Split(brokers, ","))
	if err != nil {
		log.Printf("Kafka publisher not configured: %v", err)
		return events.NewLogPublisher()
	}
	return publisher
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
