package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/infrastructure/storage"
)

// Collection names, also the suffix of each persistence key
const (
	colProducts     = "products"
	colMovements    = "movements"
	colClients      = "clients"
	colSuppliers    = "suppliers"
	colQuotes       = "quotes"
	colInvoices     = "invoices"
	colPayments     = "payments"
	colDeliveries   = "deliveries"
	colTransactions = "transactions"
	colLogs         = "logs"
	colUsers        = "users"
	colCounters     = "counters"
	colSession      = "session"
)

// Dataset is one consistent snapshot of every collection. Collections are
// never mutated in place: a write replaces the whole slice, so a reader
// holding a previous snapshot keeps a stable view. Logs and ledgers are
// ordered newest first.
type Dataset struct {
	Products     []entity.Product
	Movements    []entity.StockMovement
	Clients      []entity.Client
	Suppliers    []entity.Supplier
	Quotes       []entity.Quote
	Invoices     []entity.Invoice
	Payments     []entity.Payment
	Deliveries   []entity.DeliveryNote
	Transactions []entity.Transaction
	Logs         []entity.AuditLog
	Users        []entity.User
	Counters     map[string]int
}

// clone copies the snapshot headers. Slices are shared until replaced,
// which is safe because no write ever mutates a slice in place.
func (d *Dataset) clone() *Dataset {
	out := *d
	out.Counters = make(map[string]int, len(d.Counters))
	for k, v := range d.Counters {
		out.Counters[k] = v
	}
	return &out
}

// State is the entity store: it owns the current Dataset, loads it from
// the persistence transport on init (seeding on missing or malformed
// content), and persists each collection that changed after a commit.
type State struct {
	mu    sync.RWMutex
	store storage.Store
	keys  storage.Keyspace
	data  *Dataset
}

// Open loads every collection from the store, falling back to the seed
// dataset per collection when nothing usable is stored.
func Open(store storage.Store, keys storage.Keyspace) *State {
	seed := SeedDataset()
	data := &Dataset{}

	loadCollection(store, keys, colProducts, &data.Products, seed.Products)
	loadCollection(store, keys, colMovements, &data.Movements, seed.Movements)
	loadCollection(store, keys, colClients, &data.Clients, seed.Clients)
	loadCollection(store, keys, colSuppliers, &data.Suppliers, seed.Suppliers)
	loadCollection(store, keys, colQuotes, &data.Quotes, seed.Quotes)
	loadCollection(store, keys, colInvoices, &data.Invoices, seed.Invoices)
	loadCollection(store, keys, colPayments, &data.Payments, seed.Payments)
	loadCollection(store, keys, colDeliveries, &data.Deliveries, seed.Deliveries)
	loadCollection(store, keys, colTransactions, &data.Transactions, seed.Transactions)
	loadCollection(store, keys, colLogs, &data.Logs, seed.Logs)
	loadCollection(store, keys, colUsers, &data.Users, seed.Users)
	loadCollection(store, keys, colCounters, &data.Counters, nil)

	if data.Counters == nil {
		data.Counters = make(map[string]int)
	}
	// First run: start the document counters at the collection lengths so
	// generated references continue the historical count+1 sequence.
	if _, ok := data.Counters["quotes"]; !ok {
		data.Counters["quotes"] = len(data.Quotes)
	}
	if _, ok := data.Counters["invoices"]; !ok {
		data.Counters["invoices"] = len(data.Invoices)
	}

	return &State{store: store, keys: keys, data: data}
}

func loadCollection[T any](store storage.Store, keys storage.Keyspace, name string, dst *T, fallback T) {
	raw, err := store.Load(keys.Key(name))
	if err != nil {
		*dst = fallback
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("Warning: malformed %s collection, using seed data: %v", name, err)
		*dst = fallback
	}
}

// tx stages collection replacements until the unit of work commits
type tx struct {
	staged *Dataset
	dirty  map[string]bool
}

type txKey struct{}

func txFrom(ctx context.Context) *tx {
	t, _ := ctx.Value(txKey{}).(*tx)
	return t
}

// Execute implements repository.UnitOfWork. Writers are serialized;
// there is a single logical actor at a time, so contention is not a
// concern. When fn returns an error nothing is applied.
func (s *State) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{staged: s.data.clone(), dirty: make(map[string]bool)}
	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}

	s.data = t.staged
	s.persist(t.dirty)
	return nil
}

// persist saves each changed collection under its versioned key.
// Failures are swallowed: the in-memory commit already happened and
// storage is best-effort at this layer.
func (s *State) persist(dirty map[string]bool) {
	for name := range dirty {
		var value any
		switch name {
		case colProducts:
			value = s.data.Products
		case colMovements:
			value = s.data.Movements
		case colClients:
			value = s.data.Clients
		case colSuppliers:
			value = s.data.Suppliers
		case colQuotes:
			value = s.data.Quotes
		case colInvoices:
			value = s.data.Invoices
		case colPayments:
			value = s.data.Payments
		case colDeliveries:
			value = s.data.Deliveries
		case colTransactions:
			value = s.data.Transactions
		case colLogs:
			value = s.data.Logs
		case colUsers:
			value = s.data.Users
		case colCounters:
			value = s.data.Counters
		default:
			continue
		}

		raw, err := json.Marshal(value)
		if err != nil {
			log.Printf("Warning: failed to serialize %s collection: %v", name, err)
			continue
		}
		if err := s.store.Save(s.keys.Key(name), raw); err != nil {
			log.Printf("Warning: failed to persist %s collection: %v", name, err)
		}
	}
}

// view returns the dataset visible to the caller: the staged one inside
// a unit of work, the committed snapshot outside.
func (s *State) view(ctx context.Context) *Dataset {
	if t := txFrom(ctx); t != nil {
		return t.staged
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// update applies fn to the staged dataset. Outside a unit of work it
// wraps the write in a single-operation one.
func (s *State) update(ctx context.Context, fn func(t *tx)) error {
	if t := txFrom(ctx); t != nil {
		fn(t)
		return nil
	}
	return s.Execute(ctx, func(ctx context.Context) error {
		fn(txFrom(ctx))
		return nil
	})
}
