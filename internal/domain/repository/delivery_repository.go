package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

// DeliveryRepository defines the interface for delivery note operations
type DeliveryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryNote, error)
	List(ctx context.Context) ([]entity.DeliveryNote, error)
	Upsert(ctx context.Context, delivery *entity.DeliveryNote) error
}
