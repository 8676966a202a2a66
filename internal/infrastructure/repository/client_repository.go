package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
)

type clientRepository struct {
	state *State
}

// NewClientRepository creates a new client repository
func NewClientRepository(state *State) domainRepo.ClientRepository {
	return &clientRepository{state: state}
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	d := r.state.view(ctx)
	return findWhere(d.Clients, func(c *entity.Client) bool { return c.ID == id }), nil
}

func (r *clientRepository) List(ctx context.Context) ([]entity.Client, error) {
	return r.state.view(ctx).Clients, nil
}

func (r *clientRepository) Upsert(ctx context.Context, client *entity.Client) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Clients = replaceWhere(t.staged.Clients,
			func(c *entity.Client) bool { return c.ID == client.ID }, *client)
		t.dirty[colClients] = true
	})
}

type supplierRepository struct {
	state *State
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(state *State) domainRepo.SupplierRepository {
	return &supplierRepository{state: state}
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	d := r.state.view(ctx)
	return findWhere(d.Suppliers, func(s *entity.Supplier) bool { return s.ID == id }), nil
}

func (r *supplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	return r.state.view(ctx).Suppliers, nil
}

func (r *supplierRepository) Upsert(ctx context.Context, supplier *entity.Supplier) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Suppliers = replaceWhere(t.staged.Suppliers,
			func(s *entity.Supplier) bool { return s.ID == supplier.ID }, *supplier)
		t.dirty[colSuppliers] = true
	})
}
