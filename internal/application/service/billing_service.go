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
	"github.com/techstock/techstock-api/pkg/utils"
)

// invoiceDueDays is the payment term applied to new invoices
const invoiceDueDays = 30

// BillingService turns accepted quotes into invoices and records
// payments against them. Invoicing a quote also emits the matching
// delivery note, so the three documents stay consistent.
type BillingService struct {
	invoiceRepo     repository.InvoiceRepository
	paymentRepo     repository.PaymentRepository
	quoteRepo       repository.QuoteRepository
	deliveryRepo    repository.DeliveryRepository
	clientRepo      repository.ClientRepository
	transactionRepo repository.TransactionRepository
	counters        repository.ReferenceCounter
	quotes          *QuoteService
	audit           *AuditService
	uow             repository.UnitOfWork
	now             func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	quoteRepo repository.QuoteRepository,
	deliveryRepo repository.DeliveryRepository,
	clientRepo repository.ClientRepository,
	transactionRepo repository.TransactionRepository,
	counters repository.ReferenceCounter,
	quotes *QuoteService,
	audit *AuditService,
	uow repository.UnitOfWork,
) *BillingService {
	return &BillingService{
		invoiceRepo:     invoiceRepo,
		paymentRepo:     paymentRepo,
		quoteRepo:       quoteRepo,
		deliveryRepo:    deliveryRepo,
		clientRepo:      clientRepo,
		transactionRepo: transactionRepo,
		counters:        counters,
		quotes:          quotes,
		audit:           audit,
		uow:             uow,
		now:             time.Now,
	}
}

// CreateInvoiceFromQuote generates an UNPAID invoice copying the quote's
// items and totals, moves the quote to INVOICED, and creates a PENDING
// delivery note linked back to the quote. One atomic operation, one
// audit entry.
func (s *BillingService) CreateInvoiceFromQuote(ctx context.Context, actor entity.Actor, quoteID uuid.UUID) (*entity.Invoice, error) {
	var invoice *entity.Invoice
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		quote, err := s.quoteRepo.GetByID(ctx, quoteID)
		if err != nil {
			return err
		}
		if quote == nil {
			return apperror.NewNotFoundError("Quote")
		}

		seq, err := s.counters.Next(ctx, repository.CounterInvoices)
		if err != nil {
			return err
		}

		created := s.now()
		invoice = &entity.Invoice{
			ID:         uuid.New(),
			Reference:  utils.InvoiceReference(created.Year(), seq),
			QuoteID:    &quote.ID,
			ClientID:   quote.ClientID,
			ClientName: quote.ClientName,
			Date:       created,
			DueDate:    created.AddDate(0, 0, invoiceDueDays),
			Status:     enum.InvoiceStatusUnpaid,
			Items:      quote.Items,
			SubTotal:   quote.SubTotal,
			TaxAmount:  quote.TaxAmount,
			Total:      quote.Total,
			PaidAmount: 0,
		}
		if err := s.invoiceRepo.Upsert(ctx, invoice); err != nil {
			return err
		}

		if _, err := s.quotes.UpdateQuoteStatus(ctx, actor, quote.ID, enum.QuoteStatusInvoiced); err != nil {
			return err
		}

		address := "Unknown address"
		if client, err := s.clientRepo.GetByID(ctx, quote.ClientID); err != nil {
			return err
		} else if client != nil && client.Address != "" {
			address = client.Address
		}

		delivery := &entity.DeliveryNote{
			ID:             uuid.New(),
			Reference:      utils.DeliveryReference(created),
			QuoteReference: quote.Reference,
			ClientName:     quote.ClientName,
			Date:           created,
			Status:         enum.DeliveryStatusPending,
			Address:        address,
			ItemsCount:     quote.TotalQuantity(),
		}
		if err := s.deliveryRepo.Upsert(ctx, delivery); err != nil {
			return err
		}

		s.audit.Record(ctx, actor, "Invoicing", "Finance",
			fmt.Sprintf("Invoice %s and delivery note %s generated from quote %s",
				invoice.Reference, delivery.Reference, quote.Reference))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// AddPayment records money received against an invoice. The paid amount
// only ever grows; the invoice flips to PARTIAL or PAID accordingly, a
// cash-register entry is appended, and the client's lifetime spend is
// increased.
func (s *BillingService) AddPayment(ctx context.Context, actor entity.Actor, invoiceID uuid.UUID, amount float64, method string) (*entity.Invoice, error) {
	var updated *entity.Invoice
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}

		invoice.PaidAmount += amount
		if invoice.PaidAmount >= invoice.Total {
			invoice.Status = enum.InvoiceStatusPaid
		} else if invoice.PaidAmount > 0 {
			invoice.Status = enum.InvoiceStatusPartial
		}
		if err := s.invoiceRepo.Upsert(ctx, invoice); err != nil {
			return err
		}

		payment := entity.Payment{
			ID:        uuid.New(),
			InvoiceID: invoice.ID,
			Amount:    amount,
			Date:      s.now(),
			Method:    method,
			User:      actor.OrSystem().Name,
		}
		if err := s.paymentRepo.Append(ctx, payment); err != nil {
			return err
		}

		if err := s.transactionRepo.Append(ctx, entity.Transaction{
			ID:          uuid.New(),
			Date:        s.now(),
			Direction:   enum.TransactionIn,
			Category:    enum.TransactionSale,
			Amount:      amount,
			Method:      method,
			Description: fmt.Sprintf("Payment for invoice %s (%s)", invoice.Reference, invoice.Status),
			Reference:   payment.ID.String(),
			User:        actor.OrSystem().Name,
		}); err != nil {
			return err
		}

		if client, err := s.clientRepo.GetByID(ctx, invoice.ClientID); err != nil {
			return err
		} else if client != nil {
			client.TotalSpent += amount
			if err := s.clientRepo.Upsert(ctx, client); err != nil {
				return err
			}
		}

		s.audit.Record(ctx, actor, "Payment", "Finance",
			fmt.Sprintf("Received %.2f for invoice %s", amount, invoice.Reference))

		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetInvoice returns one invoice by id
func (s *BillingService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns every invoice, optionally filtered by status
func (s *BillingService) ListInvoices(ctx context.Context, status enum.InvoiceStatus) ([]entity.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return invoices, nil
	}
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}

// ListPayments returns payments, optionally scoped to one invoice
func (s *BillingService) ListPayments(ctx context.Context, invoiceID *uuid.UUID) ([]entity.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if invoiceID == nil {
		return payments, nil
	}
	out := make([]entity.Payment, 0, len(payments))
	for _, p := range payments {
		if p.InvoiceID == *invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}
