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

// quoteValidityDays is how long a quote stays valid after creation
const quoteValidityDays = 15

// QuoteItemInput is one requested line item
type QuoteItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64   `json:"unit_price" binding:"required"`
}

// CreateQuoteInput is the input for creating a quote
type CreateQuoteInput struct {
	ClientID uuid.UUID        `json:"client_id" binding:"required"`
	Items    []QuoteItemInput `json:"items" binding:"required,min=1,dive"`
	Notes    string           `json:"notes"`
}

// QuoteService drives the quote lifecycle: DRAFT -> SENT -> ACCEPTED ->
// INVOICED (or REJECTED). Accepting a quote reserves stock for its items,
// exactly once per quote.
type QuoteService struct {
	quoteRepo   repository.QuoteRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	counters    repository.ReferenceCounter
	stock       *StockService
	audit       *AuditService
	uow         repository.UnitOfWork
	now         func() time.Time
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	counters repository.ReferenceCounter,
	stock *StockService,
	audit *AuditService,
	uow repository.UnitOfWork,
) *QuoteService {
	return &QuoteService{
		quoteRepo:   quoteRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		counters:    counters,
		stock:       stock,
		audit:       audit,
		uow:         uow,
		now:         time.Now,
	}
}

// AddQuote creates a DRAFT quote. Line totals come from the requested
// unit prices; tax is derived per line from the product's tax rate.
func (s *QuoteService) AddQuote(ctx context.Context, actor entity.Actor, input CreateQuoteInput) (*entity.Quote, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("a quote needs at least one item")
	}

	var quote *entity.Quote
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		client, err := s.clientRepo.GetByID(ctx, input.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperror.NewNotFoundError("Client")
		}

		var (
			items     []entity.QuoteItem
			subTotal  float64
			taxAmount float64
		)
		for _, in := range input.Items {
			product, err := s.productRepo.GetByID(ctx, in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return apperror.NewNotFoundError("Product")
			}
			lineTotal := float64(in.Quantity) * in.UnitPrice
			items = append(items, entity.QuoteItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    in.Quantity,
				UnitPrice:   in.UnitPrice,
				Total:       lineTotal,
			})
			subTotal += lineTotal
			taxAmount += lineTotal * product.TaxRate / 100
		}

		seq, err := s.counters.Next(ctx, repository.CounterQuotes)
		if err != nil {
			return err
		}

		created := s.now()
		quote = &entity.Quote{
			ID:         uuid.New(),
			Reference:  utils.QuoteReference(created.Year(), seq),
			ClientID:   client.ID,
			ClientName: client.Name,
			Date:       created,
			ValidUntil: created.AddDate(0, 0, quoteValidityDays),
			Status:     enum.QuoteStatusDraft,
			Items:      items,
			SubTotal:   subTotal,
			TaxAmount:  taxAmount,
			Total:      subTotal + taxAmount,
			Notes:      input.Notes,
		}
		if err := s.quoteRepo.Upsert(ctx, quote); err != nil {
			return err
		}

		s.audit.Record(ctx, actor, "Quote Created", "Sales",
			fmt.Sprintf("Quote %s created for %s", quote.Reference, client.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// UpdateQuoteStatus moves a quote to the given status. The first
// transition into ACCEPTED reserves stock for every line item and logs
// the acceptance; repeating it is a no-op on reservations.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status enum.QuoteStatus) (*entity.Quote, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("invalid quote status")
	}

	var updated *entity.Quote
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		quote, err := s.quoteRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if quote == nil {
			return apperror.NewNotFoundError("Quote")
		}

		previous := quote.Status
		quote.Status = status
		if err := s.quoteRepo.Upsert(ctx, quote); err != nil {
			return err
		}

		if status == enum.QuoteStatusAccepted && previous != enum.QuoteStatusAccepted {
			if err := s.reserveStock(ctx, actor, quote); err != nil {
				return err
			}
			s.audit.Record(ctx, actor, "Quote Accepted", "Sales",
				fmt.Sprintf("Quote %s accepted, stock reserved", quote.Reference))
		}

		updated = quote
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// reserveStock bumps the reserved counter for each quoted product and
// leaves a RESERVE movement. Items whose product has since been deleted
// are skipped.
func (s *QuoteService) reserveStock(ctx context.Context, actor entity.Actor, quote *entity.Quote) error {
	for _, item := range quote.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			continue
		}
		product.Reserved += item.Quantity
		if err := s.productRepo.Upsert(ctx, product); err != nil {
			return err
		}
		if err := s.stock.RecordMovement(ctx, actor, product.ID, product.Name, enum.MovementReserve, item.Quantity, quote.Reference); err != nil {
			return err
		}
	}
	return nil
}

// GetQuote returns one quote by id
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotes returns every quote, optionally filtered by status
func (s *QuoteService) ListQuotes(ctx context.Context, status enum.QuoteStatus) ([]entity.Quote, error) {
	quotes, err := s.quoteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return quotes, nil
	}
	out := make([]entity.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}
