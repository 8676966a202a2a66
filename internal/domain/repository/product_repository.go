package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations.
// GetByID returns (nil, nil) when the id is unknown; callers decide
// whether that is an error.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Upsert(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StockMovementRepository is the append-only movement ledger,
// newest first.
type StockMovementRepository interface {
	List(ctx context.Context) ([]entity.StockMovement, error)
	Append(ctx context.Context, movement entity.StockMovement) error
}
