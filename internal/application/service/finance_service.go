package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/apperror"
)

// CreateTransactionInput is the input for a manual cash-register entry
type CreateTransactionInput struct {
	Direction   enum.TransactionDirection `json:"direction" binding:"required"`
	Category    enum.TransactionCategory  `json:"category" binding:"required"`
	Amount      float64                   `json:"amount" binding:"required"`
	Method      string                    `json:"method"`
	Description string                    `json:"description"`
	Reference   string                    `json:"reference"`
}

// FinanceSummary aggregates the cash ledger over a period
type FinanceSummary struct {
	TotalIn  float64 `json:"total_in"`
	TotalOut float64 `json:"total_out"`
	Net      float64 `json:"net"`
	Count    int     `json:"count"`
}

// FinanceService manages the cash-register ledger
type FinanceService struct {
	transactionRepo repository.TransactionRepository
	audit           *AuditService
	uow             repository.UnitOfWork
	now             func() time.Time
}

// NewFinanceService creates a new finance service
func NewFinanceService(
	transactionRepo repository.TransactionRepository,
	audit *AuditService,
	uow repository.UnitOfWork,
) *FinanceService {
	return &FinanceService{
		transactionRepo: transactionRepo,
		audit:           audit,
		uow:             uow,
		now:             time.Now,
	}
}

// AddTransaction appends a manual entry to the cash ledger
func (s *FinanceService) AddTransaction(ctx context.Context, actor entity.Actor, input CreateTransactionInput) (*entity.Transaction, error) {
	if !input.Direction.IsValid() {
		return nil, apperror.NewBadRequestError("invalid transaction direction")
	}
	if !input.Category.IsValid() {
		return nil, apperror.NewBadRequestError("invalid transaction category")
	}

	transaction := entity.Transaction{
		ID:          uuid.New(),
		Date:        s.now(),
		Direction:   input.Direction,
		Category:    input.Category,
		Amount:      input.Amount,
		Method:      input.Method,
		Description: input.Description,
		Reference:   input.Reference,
		User:        actor.OrSystem().Name,
	}

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.Append(ctx, transaction); err != nil {
			return err
		}
		s.audit.Record(ctx, actor, "Transaction Recorded", "Cash Register",
			fmt.Sprintf("%s %s of %.2f recorded", transaction.Direction, transaction.Category, transaction.Amount))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListTransactions returns ledger entries, optionally bounded by date
func (s *FinanceService) ListTransactions(ctx context.Context, from, to *time.Time) ([]entity.Transaction, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if from != nil && t.Date.Before(*from) {
			continue
		}
		if to != nil && t.Date.After(*to) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Summary totals the ledger over the given period
func (s *FinanceService) Summary(ctx context.Context, from, to *time.Time) (*FinanceSummary, error) {
	transactions, err := s.ListTransactions(ctx, from, to)
	if err != nil {
		return nil, err
	}
	summary := &FinanceSummary{Count: len(transactions)}
	for _, t := range transactions {
		switch t.Direction {
		case enum.TransactionIn:
			summary.TotalIn += t.Amount
		case enum.TransactionOut:
			summary.TotalOut += t.Amount
		}
	}
	summary.Net = summary.TotalIn - summary.TotalOut
	return summary, nil
}
