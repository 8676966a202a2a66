package repository

import "context"

// Document counter names used for sequential references
const (
	CounterQuotes   = "quotes"
	CounterInvoices = "invoices"
)

// ReferenceCounter allocates monotonic sequence numbers per document
// type, persisted independently of the collections they number.
type ReferenceCounter interface {
	Next(ctx context.Context, name string) (int, error)
}

// UnitOfWork runs fn so that every repository write performed through its
// context is staged and committed together, or not at all when fn returns
// an error. Nested calls join the enclosing unit of work.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
