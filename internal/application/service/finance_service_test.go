package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstock/techstock-api/internal/domain/enum"
)

func TestAddTransactionValidatesEnums(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.finance.AddTransaction(ctx, testActor, CreateTransactionInput{
		Direction: enum.TransactionDirection("DIAGONAL"),
		Category:  enum.TransactionSale,
		Amount:    100,
	})
	require.Error(t, err)

	_, err = env.finance.AddTransaction(ctx, testActor, CreateTransactionInput{
		Direction: enum.TransactionIn,
		Category:  enum.TransactionCategory("LOTTERY"),
		Amount:    100,
	})
	require.Error(t, err)

	transaction, err := env.finance.AddTransaction(ctx, testActor, CreateTransactionInput{
		Direction:   enum.TransactionOut,
		Category:    enum.TransactionExpense,
		Amount:      250,
		Method:      "cash",
		Description: "Office supplies",
	})
	require.NoError(t, err)
	assert.Equal(t, testActor.Name, transaction.User)
	assert.Equal(t, env.clock, transaction.Date)
}

func TestSummaryTotalsDirections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seed, err := env.finance.Summary(ctx, nil, nil)
	require.NoError(t, err)

	_, err = env.finance.AddTransaction(ctx, testActor, CreateTransactionInput{
		Direction: enum.TransactionIn, Category: enum.TransactionSale, Amount: 300,
	})
	require.NoError(t, err)
	_, err = env.finance.AddTransaction(ctx, testActor, CreateTransactionInput{
		Direction: enum.TransactionOut, Category: enum.TransactionPayroll, Amount: 120,
	})
	require.NoError(t, err)

	summary, err := env.finance.Summary(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, seed.TotalIn+300, summary.TotalIn)
	assert.Equal(t, seed.TotalOut+120, summary.TotalOut)
	assert.Equal(t, summary.TotalIn-summary.TotalOut, summary.Net)
	assert.Equal(t, seed.Count+2, summary.Count)
}

func TestListTransactionsDateBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.finance.AddTransaction(ctx, testActor, CreateTransactionInput{
		Direction: enum.TransactionIn, Category: enum.TransactionSale, Amount: 42,
	})
	require.NoError(t, err)

	from := env.clock.AddDate(0, 0, -1)
	to := env.clock.AddDate(0, 0, 1)
	inRange, err := env.finance.ListTransactions(ctx, &from, &to)
	require.NoError(t, err)
	assert.NotEmpty(t, inRange)

	future := env.clock.AddDate(1, 0, 0)
	outOfRange, err := env.finance.ListTransactions(ctx, &future, nil)
	require.NoError(t, err)
	assert.Empty(t, outOfRange)
}
