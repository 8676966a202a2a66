package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quote, error)
	List(ctx context.Context) ([]entity.Quote, error)
	Upsert(ctx context.Context, quote *entity.Quote) error
}
