package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstock/techstock-api/internal/domain/enum"
)

// TestSaleWorkflowEndToEnd walks a sale through its entire lifecycle:
// quote, acceptance, invoicing, payment and delivery, checking inventory
// and finance state at every step.
func TestSaleWorkflowEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.addClient(t, "End To End SARL", "Casablanca")
	product := env.addProduct(t, "Latitude 5430", 10, 100, 20)

	// Quote: 2 units at 100 with 20% tax
	quote, err := env.quote.AddQuote(ctx, testActor, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 2, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, quote.SubTotal)
	assert.Equal(t, 40.0, quote.TaxAmount)
	assert.Equal(t, 240.0, quote.Total)

	// Acceptance reserves, stock untouched
	_, err = env.quote.UpdateQuoteStatus(ctx, testActor, quote.ID, enum.QuoteStatusAccepted)
	require.NoError(t, err)
	p, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, 2, p.Reserved)

	// Invoicing copies totals and spawns the delivery note
	invoice, err := env.billing.CreateInvoiceFromQuote(ctx, testActor, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, 240.0, invoice.Total)

	// Full payment settles the invoice and feeds the cash ledger
	invoice, err = env.billing.AddPayment(ctx, testActor, invoice.ID, 240, "transfer")
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, invoice.Status)

	c, err := env.clients.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 240.0, c.TotalSpent)

	// Delivery confirmation releases inventory
	deliveries, err := env.delivery.ListDeliveries(ctx, enum.DeliveryStatusPending)
	require.NoError(t, err)
	var noteID = deliveries[0].ID
	for _, d := range deliveries {
		if d.QuoteReference == quote.Reference {
			noteID = d.ID
		}
	}
	_, err = env.delivery.UpdateDeliveryStatus(ctx, testActor, noteID, enum.DeliveryStatusDelivered)
	require.NoError(t, err)

	p, err = env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock)
	assert.Equal(t, 0, p.Reserved)

	// The full chain is visible in the audit log
	logs, err := env.audit.List(ctx, AuditFilter{Search: quote.Reference})
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
}

func TestStockNeverGoesNegative(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.addProduct(t, "Scarce Item", 3, 500, 20)

	for i := 0; i < 5; i++ {
		_, err := env.stock.AdjustStock(ctx, testActor, product.ID, 2, enum.MovementOut, "bleed")
		require.NoError(t, err)
	}

	p, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.Stock, 0)
	assert.Equal(t, 0, p.Stock)
}

func TestDashboardReflectsWorkflowState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before, err := env.report.Dashboard(ctx)
	require.NoError(t, err)

	client := env.addClient(t, "Stats Client", "Rabat")
	product := env.addProduct(t, "Counted Widget", 10, 100, 20)

	_, err = env.quote.AddQuote(ctx, testActor, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	after, err := env.report.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Products+1, after.Products)
	assert.Equal(t, before.OpenQuotes+1, after.OpenQuotes)
}

func TestExportInventoryProducesWorkbook(t *testing.T) {
	env := newTestEnv(t)

	env.addProduct(t, "Exported Laptop", 4, 8000, 20)

	data, err := env.report.ExportInventoryXLSX(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// XLSX files are zip archives
	assert.Equal(t, byte('P'), data[0])
	assert.Equal(t, byte('K'), data[1])
}
