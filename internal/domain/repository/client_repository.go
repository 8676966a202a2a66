package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error)
	Upsert(ctx context.Context, client *entity.Client) error
}

// SupplierRepository holds read-only supplier reference data
type SupplierRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	List(ctx context.Context) ([]entity.Supplier, error)
	Upsert(ctx context.Context, supplier *entity.Supplier) error
}
