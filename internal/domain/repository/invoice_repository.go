package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context) ([]entity.Invoice, error)
	Upsert(ctx context.Context, invoice *entity.Invoice) error
}

// PaymentRepository is the append-only payment record, newest first
type PaymentRepository interface {
	List(ctx context.Context) ([]entity.Payment, error)
	Append(ctx context.Context, payment entity.Payment) error
}
