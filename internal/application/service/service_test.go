package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
	infra "github.com/techstock/techstock-api/internal/infrastructure/repository"
	"github.com/techstock/techstock-api/internal/infrastructure/storage"
	"github.com/techstock/techstock-api/pkg/utils"
)

var testActor = entity.Actor{Name: "Sarah Sales", Role: "MANAGER"}

// testEnv wires every service over an in-memory store. The clock is
// pinned so generated dates and references are predictable.
type testEnv struct {
	store    *storage.MemoryStore
	state    *infra.State
	clock    time.Time
	products repository.ProductRepository
	quotes   repository.QuoteRepository
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	logs     repository.AuditLogRepository

	audit    *AuditService
	stock    *StockService
	product  *ProductService
	client   *ClientService
	quote    *QuoteService
	billing  *BillingService
	delivery *DeliveryService
	finance  *FinanceService
	report   *ReportService
	auth     *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	keys := storage.DefaultKeyspace
	state := infra.Open(store, keys)

	productRepo := infra.NewProductRepository(state)
	movementRepo := infra.NewStockMovementRepository(state)
	clientRepo := infra.NewClientRepository(state)
	supplierRepo := infra.NewSupplierRepository(state)
	quoteRepo := infra.NewQuoteRepository(state)
	invoiceRepo := infra.NewInvoiceRepository(state)
	paymentRepo := infra.NewPaymentRepository(state)
	deliveryRepo := infra.NewDeliveryRepository(state)
	transactionRepo := infra.NewTransactionRepository(state)
	auditRepo := infra.NewAuditLogRepository(state)
	userRepo := infra.NewUserRepository(state)
	sessionRepo := infra.NewSessionRepository(store, keys)
	counterRepo := infra.NewCounterRepository(state)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	env := &testEnv{
		store:    store,
		state:    state,
		clock:    time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		products: productRepo,
		quotes:   quoteRepo,
		invoices: invoiceRepo,
		clients:  clientRepo,
		logs:     auditRepo,
	}

	env.audit = NewAuditService(auditRepo)
	env.stock = NewStockService(productRepo, movementRepo, env.audit, state)
	env.product = NewProductService(productRepo, env.stock, env.audit, state)
	env.client = NewClientService(clientRepo, supplierRepo, env.audit, state)
	env.quote = NewQuoteService(quoteRepo, productRepo, clientRepo, counterRepo, env.stock, env.audit, state)
	env.billing = NewBillingService(invoiceRepo, paymentRepo, quoteRepo, deliveryRepo, clientRepo, transactionRepo, counterRepo, env.quote, env.audit, state)
	env.delivery = NewDeliveryService(deliveryRepo, quoteRepo, productRepo, env.stock, env.audit, state)
	env.finance = NewFinanceService(transactionRepo, env.audit, state)
	env.report = NewReportService(productRepo, quoteRepo, invoiceRepo, deliveryRepo)
	env.auth = NewAuthService(userRepo, sessionRepo, jwtManager, env.audit)

	now := func() time.Time { return env.clock }
	env.audit.now = now
	env.stock.now = now
	env.product.now = now
	env.quote.now = now
	env.billing.now = now
	env.delivery.now = now
	env.finance.now = now

	return env
}

func (e *testEnv) addProduct(t *testing.T, name string, stock int, price, taxRate float64) *entity.Product {
	t.Helper()
	product, err := e.product.AddProduct(context.Background(), testActor, CreateProductInput{
		Code:      "TST-" + name,
		Name:      name,
		Category:  "Laptops",
		SellPrice: price,
		TaxRate:   taxRate,
		Stock:     stock,
		MinStock:  2,
	})
	require.NoError(t, err)
	return product
}

func (e *testEnv) addClient(t *testing.T, name, address string) *entity.Client {
	t.Helper()
	client, err := e.client.AddClient(context.Background(), testActor, CreateClientInput{
		Name:    name,
		Email:   name + "@example.ma",
		Address: address,
	})
	require.NoError(t, err)
	return client
}

func (e *testEnv) auditCount(t *testing.T) int {
	t.Helper()
	logs, err := e.logs.List(context.Background())
	require.NoError(t, err)
	return len(logs)
}
