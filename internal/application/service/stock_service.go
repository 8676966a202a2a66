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

// StockService owns every change to product stock levels. All writers
// go through it so each change leaves a movement in the ledger.
type StockService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	audit        *AuditService
	uow          repository.UnitOfWork
	now          func() time.Time
}

// NewStockService creates a new stock service
func NewStockService(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	audit *AuditService,
	uow repository.UnitOfWork,
) *StockService {
	return &StockService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		audit:        audit,
		uow:          uow,
		now:          time.Now,
	}
}

// RecordMovement appends a ledger entry without touching stock levels.
// Callers that already adjusted the level use it to leave the trace.
func (s *StockService) RecordMovement(ctx context.Context, actor entity.Actor, productID uuid.UUID, productName string, movementType enum.MovementType, quantity int, reference string) error {
	return s.movementRepo.Append(ctx, entity.StockMovement{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		Type:        movementType,
		Quantity:    quantity,
		Reference:   reference,
		Date:        s.now(),
		User:        actor.OrSystem().Name,
	})
}

// AdjustStock applies a manual stock correction. IN movements add to
// the level, every other type subtracts, and the result never drops
// below zero.
func (s *StockService) AdjustStock(ctx context.Context, actor entity.Actor, productID uuid.UUID, quantity int, movementType enum.MovementType, reason string) (*entity.Product, error) {
	if !movementType.IsValid() {
		return nil, apperror.NewBadRequestError("invalid movement type")
	}

	var adjusted *entity.Product
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("Product")
		}

		newStock := product.Stock
		if movementType.AddsStock() {
			newStock += quantity
		} else {
			newStock -= quantity
		}
		if newStock < 0 {
			newStock = 0
		}
		product.Stock = newStock

		if err := s.productRepo.Upsert(ctx, product); err != nil {
			return err
		}
		if err := s.RecordMovement(ctx, actor, product.ID, product.Name, movementType, quantity, reason); err != nil {
			return err
		}

		s.audit.Record(ctx, actor, "Stock Adjustment", "Inventory",
			fmt.Sprintf("%s %d x %s (%s)", movementType, quantity, product.Name, reason))

		adjusted = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return adjusted, nil
}

// Movements lists the ledger, optionally filtered to one product
func (s *StockService) Movements(ctx context.Context, productID *uuid.UUID) ([]entity.StockMovement, error) {
	movements, err := s.movementRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if productID == nil {
		return movements, nil
	}
	out := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if m.ProductID == *productID {
			out = append(out, m)
		}
	}
	return out, nil
}
