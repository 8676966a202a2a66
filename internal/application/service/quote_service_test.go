package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/pkg/apperror"
)

var quoteRefPattern = regexp.MustCompile(`^DEV-\d{4}-\d{4}$`)

func TestAddQuoteComputesTotalsFromTaxRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.addClient(t, "Atlas Telecom", "Casablanca")
	product := env.addProduct(t, "Router X1", 20, 100, 20)

	quote, err := env.quote.AddQuote(ctx, testActor, CreateQuoteInput{
		ClientID: client.ID,
		Items: []QuoteItemInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: 100},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, quoteRefPattern, quote.Reference)
	assert.Equal(t, enum.QuoteStatusDraft, quote.Status)
	assert.Equal(t, client.Name, quote.ClientName)
	assert.Equal(t, 200.0, quote.SubTotal)
	assert.Equal(t, 40.0, quote.TaxAmount)
	assert.Equal(t, 240.0, quote.Total)
	assert.Equal(t, env.clock.AddDate(0, 0, 15), quote.ValidUntil)
}

func TestAddQuoteUnknownClient(t *testing.T) {
	env := newTestEnv(t)
	product := env.addProduct(t, "Switch S8", 5, 300, 20)

	_, err := env.quote.AddQuote(context.Background(), testActor, CreateQuoteInput{
		ClientID: uuid.New(),
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 300}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestQuoteReferencesAreSequentialAndUnique(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.addClient(t, "Repeat Buyer", "Rabat")
	product := env.addProduct(t, "Cable Pack", 100, 10, 0)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		quote, err := env.quote.AddQuote(ctx, testActor, CreateQuoteInput{
			ClientID: client.ID,
			Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 10}},
		})
		require.NoError(t, err)
		assert.Regexp(t, quoteRefPattern, quote.Reference)
		assert.False(t, seen[quote.Reference], "duplicate reference %s", quote.Reference)
		seen[quote.Reference] = true
	}
}

func TestAcceptQuoteReservesStockExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.addClient(t, "Big Order SARL", "Tanger")
	product := env.addProduct(t, "Server R340", 10, 15000, 20)

	quote, err := env.quote.AddQuote(ctx, testActor, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 4, UnitPrice: 15000}},
	})
	require.NoError(t, err)

	// Creating a quote must not touch inventory
	current, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Reserved)

	_, err = env.quote.UpdateQuoteStatus(ctx, testActor, quote.ID, enum.QuoteStatusAccepted)
	require.NoError(t, err)

	current, err = env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, current.Stock, "stock unchanged by reservation")
	assert.Equal(t, 4, current.Reserved)

	// Re-accepting is a no-op on reservations
	_, err = env.quote.UpdateQuoteStatus(ctx, testActor, quote.ID, enum.QuoteStatusAccepted)
	require.NoError(t, err)

	current, err = env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, current.Reserved)

	movements, err := env.stock.Movements(ctx, &product.ID)
	require.NoError(t, err)
	var reserves int
	for _, m := range movements {
		if m.Type == enum.MovementReserve {
			reserves++
			assert.Equal(t, quote.Reference, m.Reference)
		}
	}
	assert.Equal(t, 1, reserves)
}

func TestOverReservationIsAccepted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.addClient(t, "Optimist Corp", "Fes")
	product := env.addProduct(t, "Rare GPU", 2, 12000, 20)

	quote, err := env.quote.AddQuote(ctx, testActor, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 5, UnitPrice: 12000}},
	})
	require.NoError(t, err)

	_, err = env.quote.UpdateQuoteStatus(ctx, testActor, quote.ID, enum.QuoteStatusAccepted)
	require.NoError(t, err)

	current, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, current.Reserved, "reserved may exceed stock")
	assert.Equal(t, 2, current.Stock)
}

func TestRejectQuoteDoesNotReserve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.addClient(t, "Cold Feet Ltd", "Agadir")
	product := env.addProduct(t, "Webcam", 8, 400, 20)

	quote, err := env.quote.AddQuote(ctx, testActor, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 3, UnitPrice: 400}},
	})
	require.NoError(t, err)

	_, err = env.quote.UpdateQuoteStatus(ctx, testActor, quote.ID, enum.QuoteStatusRejected)
	require.NoError(t, err)

	current, err := env.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Reserved)
}

func TestUpdateQuoteStatusRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.quote.UpdateQuoteStatus(context.Background(), testActor, uuid.New(), enum.QuoteStatus("MAYBE"))
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
}
