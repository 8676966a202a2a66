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

// CreateDeliveryInput is the input for a manual delivery note
type CreateDeliveryInput struct {
	QuoteReference string `json:"quote_reference"`
	ClientName     string `json:"client_name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Driver         string `json:"driver"`
	ItemsCount     int    `json:"items_count"`
}

// DeliveryService handles delivery notes. Confirming a delivery linked
// to a quote releases the reservation and deducts physical stock.
type DeliveryService struct {
	deliveryRepo repository.DeliveryRepository
	quoteRepo    repository.QuoteRepository
	productRepo  repository.ProductRepository
	stock        *StockService
	audit        *AuditService
	uow          repository.UnitOfWork
	now          func() time.Time
}

// NewDeliveryService creates a new delivery service
func NewDeliveryService(
	deliveryRepo repository.DeliveryRepository,
	quoteRepo repository.QuoteRepository,
	productRepo repository.ProductRepository,
	stock *StockService,
	audit *AuditService,
	uow repository.UnitOfWork,
) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		quoteRepo:    quoteRepo,
		productRepo:  productRepo,
		stock:        stock,
		audit:        audit,
		uow:          uow,
		now:          time.Now,
	}
}

// AddDelivery creates a PENDING delivery note. Manual notes carry no
// quote reference and never touch inventory.
func (s *DeliveryService) AddDelivery(ctx context.Context, actor entity.Actor, input CreateDeliveryInput) (*entity.DeliveryNote, error) {
	created := s.now()
	delivery := &entity.DeliveryNote{
		ID:             uuid.New(),
		Reference:      utils.DeliveryReference(created),
		QuoteReference: input.QuoteReference,
		ClientName:     input.ClientName,
		Date:           created,
		Status:         enum.DeliveryStatusPending,
		Address:        input.Address,
		Driver:         input.Driver,
		ItemsCount:     input.ItemsCount,
	}

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.deliveryRepo.Upsert(ctx, delivery); err != nil {
			return err
		}
		s.audit.Record(ctx, actor, "Shipment", "Logistics",
			fmt.Sprintf("Delivery note %s created for %s", delivery.Reference, delivery.ClientName))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// UpdateDeliveryStatus moves a delivery note to the given status. The
// first transition into DELIVERED on a quote-linked note deducts stock
// and releases the reservation for every quoted item, each counter
// floored at zero independently.
func (s *DeliveryService) UpdateDeliveryStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status enum.DeliveryStatus) (*entity.DeliveryNote, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("invalid delivery status")
	}

	var updated *entity.DeliveryNote
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		delivery, err := s.deliveryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if delivery == nil {
			return apperror.NewNotFoundError("Delivery note")
		}

		previous := delivery.Status
		delivery.Status = status
		if err := s.deliveryRepo.Upsert(ctx, delivery); err != nil {
			return err
		}

		if status == enum.DeliveryStatusDelivered && previous != enum.DeliveryStatusDelivered {
			if err := s.releaseStock(ctx, actor, delivery); err != nil {
				return err
			}
			s.audit.Record(ctx, actor, "Delivery Confirmed", "Logistics",
				fmt.Sprintf("Delivery note %s delivered", delivery.Reference))
		}

		updated = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// releaseStock deducts stock and reserved for each item of the quote the
// note originates from. Notes without a quote reference, or whose quote
// no longer exists, leave inventory untouched.
func (s *DeliveryService) releaseStock(ctx context.Context, actor entity.Actor, delivery *entity.DeliveryNote) error {
	if delivery.QuoteReference == "" {
		return nil
	}
	quote, err := s.quoteRepo.GetByReference(ctx, delivery.QuoteReference)
	if err != nil {
		return err
	}
	if quote == nil {
		return nil
	}

	for _, item := range quote.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			continue
		}
		product.Stock -= item.Quantity
		if product.Stock < 0 {
			product.Stock = 0
		}
		product.Reserved -= item.Quantity
		if product.Reserved < 0 {
			product.Reserved = 0
		}
		if err := s.productRepo.Upsert(ctx, product); err != nil {
			return err
		}
		if err := s.stock.RecordMovement(ctx, actor, product.ID, product.Name, enum.MovementOut, item.Quantity, delivery.Reference); err != nil {
			return err
		}
	}
	return nil
}

// GetDelivery returns one delivery note by id
func (s *DeliveryService) GetDelivery(ctx context.Context, id uuid.UUID) (*entity.DeliveryNote, error) {
	delivery, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, apperror.NewNotFoundError("Delivery note")
	}
	return delivery, nil
}

// ListDeliveries returns every delivery note, optionally filtered by status
func (s *DeliveryService) ListDeliveries(ctx context.Context, status enum.DeliveryStatus) ([]entity.DeliveryNote, error) {
	deliveries, err := s.deliveryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return deliveries, nil
	}
	out := make([]entity.DeliveryNote, 0, len(deliveries))
	for _, d := range deliveries {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}
