package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/internal/infrastructure/storage"
)

func newState(t *testing.T) (*State, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return Open(store, storage.DefaultKeyspace), store
}

func testProduct(name string) *entity.Product {
	return &entity.Product{ID: uuid.New(), Code: "T-" + name, Name: name, Stock: 5}
}

func TestOpenSeedsOnEmptyStore(t *testing.T) {
	state, _ := newState(t)
	ctx := context.Background()

	products, err := NewProductRepository(state).List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, products, "empty store falls back to seed data")

	users, err := NewUserRepository(state).List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, users)
}

func TestOpenFallsBackOnCorruptCollection(t *testing.T) {
	store := storage.NewMemoryStore()
	keys := storage.DefaultKeyspace
	require.NoError(t, store.Save(keys.Key("products"), []byte("??!not json")))

	state := Open(store, keys)
	products, err := NewProductRepository(state).List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, products, "corrupt collection is replaced by seed data")
}

func TestExecuteCommitsAndPersists(t *testing.T) {
	state, store := newState(t)
	ctx := context.Background()
	repo := NewProductRepository(state)

	product := testProduct("Committed")
	err := state.Execute(ctx, func(ctx context.Context) error {
		return repo.Upsert(ctx, product)
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, product.Name, got.Name)

	// The dirty collection reached the store under its versioned key
	raw, err := store.Load(storage.DefaultKeyspace.Key("products"))
	require.NoError(t, err)
	var persisted []entity.Product
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, product.ID, persisted[0].ID, "new items are prepended")
}

func TestExecuteRollsBackOnError(t *testing.T) {
	state, store := newState(t)
	ctx := context.Background()
	repo := NewProductRepository(state)

	product := testProduct("Ghost")
	boom := errors.New("boom")
	err := state.Execute(ctx, func(ctx context.Context) error {
		if err := repo.Upsert(ctx, product); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "failed unit of work leaves no trace")

	_, err = store.Load(storage.DefaultKeyspace.Key("products"))
	assert.ErrorIs(t, err, storage.ErrNotFound, "nothing was persisted")
}

func TestNestedExecuteJoinsOuterUnit(t *testing.T) {
	state, _ := newState(t)
	ctx := context.Background()
	repo := NewProductRepository(state)

	first := testProduct("First")
	second := testProduct("Second")
	boom := errors.New("boom")

	err := state.Execute(ctx, func(ctx context.Context) error {
		if err := repo.Upsert(ctx, first); err != nil {
			return err
		}
		// Inner Execute joins the same staged dataset
		if err := state.Execute(ctx, func(ctx context.Context) error {
			return repo.Upsert(ctx, second)
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "inner writes roll back with the outer unit")
}

func TestWritesOutsideUnitOfWorkCommitImmediately(t *testing.T) {
	state, _ := newState(t)
	ctx := context.Background()
	repo := NewProductRepository(state)

	product := testProduct("Direct")
	require.NoError(t, repo.Upsert(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestCountersSeedFromCollectionLengths(t *testing.T) {
	state, _ := newState(t)
	ctx := context.Background()
	counters := NewCounterRepository(state)

	quotes, err := NewQuoteRepository(state).List(ctx)
	require.NoError(t, err)

	next, err := counters.Next(ctx, domainRepo.CounterQuotes)
	require.NoError(t, err)
	assert.Equal(t, len(quotes)+1, next, "sequence continues after historical documents")
}

func TestCountersPersistAcrossReopen(t *testing.T) {
	store := storage.NewMemoryStore()
	keys := storage.DefaultKeyspace
	ctx := context.Background()

	state := Open(store, keys)
	counters := NewCounterRepository(state)
	first, err := counters.Next(ctx, domainRepo.CounterInvoices)
	require.NoError(t, err)

	// Reopen from the same store: the counter must not reset, even
	// though the invoices collection itself did not grow
	reopened := Open(store, keys)
	second, err := NewCounterRepository(reopened).Next(ctx, domainRepo.CounterInvoices)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestUpsertReplacesInPlace(t *testing.T) {
	state, _ := newState(t)
	ctx := context.Background()
	repo := NewProductRepository(state)

	product := testProduct("Mutable")
	require.NoError(t, repo.Upsert(ctx, product))

	before, err := repo.List(ctx)
	require.NoError(t, err)

	product.Stock = 42
	require.NoError(t, repo.Upsert(ctx, product))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after), "upsert of existing id does not grow the collection")

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Stock)
}

func TestSessionRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := NewSessionRepository(store, storage.DefaultKeyspace)
	ctx := context.Background()

	got, err := sessions.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "no session before login")

	user := &entity.User{ID: uuid.New(), Name: "Session User", Email: "s@techstock.ma"}
	require.NoError(t, sessions.Put(ctx, user))

	got, err = sessions.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, sessions.Clear(ctx))
	got, err = sessions.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQuoteLookupByReference(t *testing.T) {
	state, _ := newState(t)
	ctx := context.Background()
	repo := NewQuoteRepository(state)

	quotes, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, quotes)

	got, err := repo.GetByReference(ctx, quotes[0].Reference)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, quotes[0].ID, got.ID)

	missing, err := repo.GetByReference(ctx, "DEV-1999-9999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
