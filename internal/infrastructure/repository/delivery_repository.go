package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
)

type deliveryRepository struct {
	state *State
}

// NewDeliveryRepository creates a new delivery note repository
func NewDeliveryRepository(state *State) domainRepo.DeliveryRepository {
	return &deliveryRepository{state: state}
}

func (r *deliveryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryNote, error) {
	d := r.state.view(ctx)
	return findWhere(d.Deliveries, func(n *entity.DeliveryNote) bool { return n.ID == id }), nil
}

func (r *deliveryRepository) List(ctx context.Context) ([]entity.DeliveryNote, error) {
	return r.state.view(ctx).Deliveries, nil
}

func (r *deliveryRepository) Upsert(ctx context.Context, delivery *entity.DeliveryNote) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Deliveries = replaceWhere(t.staged.Deliveries,
			func(n *entity.DeliveryNote) bool { return n.ID == delivery.ID }, *delivery)
		t.dirty[colDeliveries] = true
	})
}
