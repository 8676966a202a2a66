package repository

import (
	"context"

	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
)

type transactionRepository struct {
	state *State
}

// NewTransactionRepository creates a new cash ledger repository
func NewTransactionRepository(state *State) domainRepo.TransactionRepository {
	return &transactionRepository{state: state}
}

func (r *transactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	return r.state.view(ctx).Transactions, nil
}

func (r *transactionRepository) Append(ctx context.Context, transaction entity.Transaction) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Transactions = prepend(t.staged.Transactions, transaction)
		t.dirty[colTransactions] = true
	})
}

type auditLogRepository struct {
	state *State
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(state *State) domainRepo.AuditLogRepository {
	return &auditLogRepository{state: state}
}

func (r *auditLogRepository) List(ctx context.Context) ([]entity.AuditLog, error) {
	return r.state.view(ctx).Logs, nil
}

func (r *auditLogRepository) Append(ctx context.Context, log entity.AuditLog) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Logs = prepend(t.staged.Logs, log)
		t.dirty[colLogs] = true
	})
}
