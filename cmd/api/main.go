package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/config"
	"github.com/techstock/techstock-api/internal/infrastructure/repository"
	"github.com/techstock/techstock-api/internal/infrastructure/storage"
	"github.com/techstock/techstock-api/internal/presentation/http/handler"
	"github.com/techstock/techstock-api/internal/presentation/http/routes"
	"github.com/techstock/techstock-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the blob store and load application state
	store, err := storage.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	keys := storage.Keyspace{
		Namespace: cfg.Storage.Namespace,
		Version:   cfg.Storage.Version,
	}
	state := repository.Open(store, keys)

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	productRepo := repository.NewProductRepository(state)
	movementRepo := repository.NewStockMovementRepository(state)
	clientRepo := repository.NewClientRepository(state)
	supplierRepo := repository.NewSupplierRepository(state)
	quoteRepo := repository.NewQuoteRepository(state)
	invoiceRepo := repository.NewInvoiceRepository(state)
	paymentRepo := repository.NewPaymentRepository(state)
	deliveryRepo := repository.NewDeliveryRepository(state)
	transactionRepo := repository.NewTransactionRepository(state)
	auditRepo := repository.NewAuditLogRepository(state)
	userRepo := repository.NewUserRepository(state)
	sessionRepo := repository.NewSessionRepository(store, keys)
	counterRepo := repository.NewCounterRepository(state)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	stockService := service.NewStockService(productRepo, movementRepo, auditService, state)
	productService := service.NewProductService(productRepo, stockService, auditService, state)
	clientService := service.NewClientService(clientRepo, supplierRepo, auditService, state)
	quoteService := service.NewQuoteService(quoteRepo, productRepo, clientRepo, counterRepo, stockService, auditService, state)
	billingService := service.NewBillingService(invoiceRepo, paymentRepo, quoteRepo, deliveryRepo, clientRepo, transactionRepo, counterRepo, quoteService, auditService, state)
	deliveryService := service.NewDeliveryService(deliveryRepo, quoteRepo, productRepo, stockService, auditService, state)
	financeService := service.NewFinanceService(transactionRepo, auditService, state)
	reportService := service.NewReportService(productRepo, quoteRepo, invoiceRepo, deliveryRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, jwtManager, auditService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService, stockService),
		Client:   handler.NewClientHandler(clientService),
		Quote:    handler.NewQuoteHandler(quoteService),
		Invoice:  handler.NewInvoiceHandler(billingService),
		Delivery: handler.NewDeliveryHandler(deliveryService),
		Finance:  handler.NewFinanceHandler(financeService),
		Audit:    handler.NewAuditHandler(auditService),
		Report:   handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
