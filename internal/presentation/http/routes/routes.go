package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/config"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/presentation/http/handler"
	"github.com/techstock/techstock-api/internal/presentation/http/middleware"
	"github.com/techstock/techstock-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Client   *handler.ClientHandler
	Quote    *handler.QuoteHandler
	Invoice  *handler.InvoiceHandler
	Delivery *handler.DeliveryHandler
	Finance  *handler.FinanceHandler
	Audit    *handler.AuditHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Profile)

	// Dashboard and exports
	protected.GET("/dashboard", h.Report.Dashboard)
	protected.GET("/reports/inventory", h.Report.ExportInventory)

	// Products and stock
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.GET("/:id/movements", h.Product.ProductMovements)
		products.POST("", middleware.RequirePermission(enum.PermManageStock), h.Product.Create)
		products.PUT("/:id", middleware.RequirePermission(enum.PermManageStock), h.Product.Update)
		products.DELETE("/:id", middleware.RequirePermission(enum.PermManageStock), h.Product.Delete)
		products.POST("/:id/adjust-stock", middleware.RequirePermission(enum.PermManageStock), h.Product.AdjustStock)
	}
	protected.GET("/stock-movements", h.Product.Movements)

	// Clients and suppliers
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.GET("/:id", h.Client.Get)
		clients.POST("", h.Client.Create)
		clients.PUT("/:id", h.Client.Update)
	}
	protected.GET("/suppliers", h.Client.ListSuppliers)
	protected.POST("/suppliers", h.Client.CreateSupplier)

	// Quotes
	quotes := protected.Group("/quotes")
	{
		quotes.GET("", h.Quote.List)
		quotes.GET("/:id", h.Quote.Get)
		quotes.POST("", middleware.RequirePermission(enum.PermCreateSales), h.Quote.Create)
		quotes.PATCH("/:id/status", middleware.RequirePermission(enum.PermApproveQuotes), h.Quote.UpdateStatus)
		quotes.POST("/:id/invoice", middleware.RequirePermission(enum.PermCreateSales), h.Invoice.CreateFromQuote)
	}

	// Invoices and payments
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/payments", h.Invoice.ListPayments)
		invoices.POST("/:id/payments", middleware.RequirePermission(enum.PermCreateSales), h.Invoice.AddPayment)
	}

	// Deliveries
	deliveries := protected.Group("/deliveries")
	{
		deliveries.GET("", h.Delivery.List)
		deliveries.GET("/:id", h.Delivery.Get)
		deliveries.POST("", h.Delivery.Create)
		deliveries.PATCH("/:id/status", h.Delivery.UpdateStatus)
	}

	// Cash register
	transactions := protected.Group("/transactions")
	transactions.Use(middleware.RequirePermission(enum.PermViewFinance))
	{
		transactions.GET("", h.Finance.List)
		transactions.POST("", h.Finance.Create)
		transactions.GET("/summary", h.Finance.Summary)
	}

	// Audit log
	audit := protected.Group("/audit")
	audit.Use(middleware.RequireRole(enum.RoleAdmin, enum.RoleManager))
	{
		audit.GET("", h.Audit.List)
		audit.GET("/modules", h.Audit.Modules)
		audit.GET("/export", h.Audit.Export)
	}
}
