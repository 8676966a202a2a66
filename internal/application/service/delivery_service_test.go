package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/enum"
)

// invoicedDelivery runs the full chain up to the generated delivery note
func invoicedDelivery(t *testing.T, env *testEnv) (*entity.Product, *entity.Quote, *entity.DeliveryNote) {
	t.Helper()
	ctx := context.Background()

	_, product, quote := acceptedQuote(t, env, "Casablanca")
	_, err := env.billing.CreateInvoiceFromQuote(ctx, testActor, quote.ID)
	require.NoError(t, err)

	deliveries, err := env.delivery.ListDeliveries(ctx, enum.DeliveryStatusPending)
	require.NoError(t, err)
	for i := range deliveries {
		if deliveries[i].QuoteReference == quote.Reference {
			return product, quote, &deliveries[i]
		}
	}
	t.Fatal("delivery note not generated")
	return nil, nil, nil
}

func TestConfirmDeliveryReleasesStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product, _, note := invoicedDelivery(t, env)

	// Accepted quote reserved 2 of 10
	before, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 10, before.Stock)
	require.Equal(t, 2, before.Reserved)

	updated, err := env.delivery.UpdateDeliveryStatus(ctx, testActor, note.ID, enum.DeliveryStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, enum.DeliveryStatusDelivered, updated.Status)

	after, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, after.Stock)
	assert.Equal(t, 0, after.Reserved)

	movements, err := env.stock.Movements(ctx, &product.ID)
	require.NoError(t, err)
	var outs int
	for _, m := range movements {
		if m.Type == enum.MovementOut {
			outs++
			assert.Equal(t, note.Reference, m.Reference)
		}
	}
	assert.Equal(t, 1, outs)
}

func TestConfirmDeliveryIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product, _, note := invoicedDelivery(t, env)

	_, err := env.delivery.UpdateDeliveryStatus(ctx, testActor, note.ID, enum.DeliveryStatusDelivered)
	require.NoError(t, err)
	_, err = env.delivery.UpdateDeliveryStatus(ctx, testActor, note.ID, enum.DeliveryStatusDelivered)
	require.NoError(t, err)

	after, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, after.Stock, "second confirmation must not deduct again")
	assert.Equal(t, 0, after.Reserved)
}

func TestDeliveryCountersFloorAtZeroIndependently(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product, _, note := invoicedDelivery(t, env)

	// Drain physical stock below the delivered quantity before confirming
	_, err := env.stock.AdjustStock(ctx, testActor, product.ID, 9, enum.MovementOut, "Shrinkage")
	require.NoError(t, err)

	_, err = env.delivery.UpdateDeliveryStatus(ctx, testActor, note.ID, enum.DeliveryStatusDelivered)
	require.NoError(t, err)

	after, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Stock, "stock floors at zero")
	assert.Equal(t, 0, after.Reserved, "reserved released regardless")
}

func TestManualDeliveryNeverTouchesInventory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.addProduct(t, "Untouched Monitor", 7, 1500, 20)

	note, err := env.delivery.AddDelivery(ctx, testActor, CreateDeliveryInput{
		ClientName: "Walk-in",
		Address:    "Pickup counter",
		ItemsCount: 3,
	})
	require.NoError(t, err)
	assert.Regexp(t, deliveryRefPattern, note.Reference)
	assert.Equal(t, enum.DeliveryStatusPending, note.Status)

	_, err = env.delivery.UpdateDeliveryStatus(ctx, testActor, note.ID, enum.DeliveryStatusDelivered)
	require.NoError(t, err)

	after, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, after.Stock)
	assert.Equal(t, 0, after.Reserved)
}

func TestCancelDeliveryLeavesStockAlone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product, _, note := invoicedDelivery(t, env)

	_, err := env.delivery.UpdateDeliveryStatus(ctx, testActor, note.ID, enum.DeliveryStatusCancelled)
	require.NoError(t, err)

	after, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, after.Stock)
	assert.Equal(t, 2, after.Reserved)
}
