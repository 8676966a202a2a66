package repository

import (
	"context"

	"github.com/techstock/techstock-api/internal/domain/entity"
)

// TransactionRepository is the append-only cash ledger, newest first
type TransactionRepository interface {
	List(ctx context.Context) ([]entity.Transaction, error)
	Append(ctx context.Context, transaction entity.Transaction) error
}
