package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
)

type invoiceRepository struct {
	state *State
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(state *State) domainRepo.InvoiceRepository {
	return &invoiceRepository{state: state}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	d := r.state.view(ctx)
	return findWhere(d.Invoices, func(i *entity.Invoice) bool { return i.ID == id }), nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	return r.state.view(ctx).Invoices, nil
}

func (r *invoiceRepository) Upsert(ctx context.Context, invoice *entity.Invoice) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Invoices = replaceWhere(t.staged.Invoices,
			func(i *entity.Invoice) bool { return i.ID == invoice.ID }, *invoice)
		t.dirty[colInvoices] = true
	})
}

type paymentRepository struct {
	state *State
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(state *State) domainRepo.PaymentRepository {
	return &paymentRepository{state: state}
}

func (r *paymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	return r.state.view(ctx).Payments, nil
}

func (r *paymentRepository) Append(ctx context.Context, payment entity.Payment) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Payments = prepend(t.staged.Payments, payment)
		t.dirty[colPayments] = true
	})
}
