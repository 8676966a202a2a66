package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
)

type productRepository struct {
	state *State
}

// NewProductRepository creates a new product repository
func NewProductRepository(state *State) domainRepo.ProductRepository {
	return &productRepository{state: state}
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	d := r.state.view(ctx)
	return findWhere(d.Products, func(p *entity.Product) bool { return p.ID == id }), nil
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.state.view(ctx).Products, nil
}

func (r *productRepository) Upsert(ctx context.Context, product *entity.Product) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Products = replaceWhere(t.staged.Products,
			func(p *entity.Product) bool { return p.ID == product.ID }, *product)
		t.dirty[colProducts] = true
	})
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Products = removeWhere(t.staged.Products,
			func(p *entity.Product) bool { return p.ID == id })
		t.dirty[colProducts] = true
	})
}

type stockMovementRepository struct {
	state *State
}

// NewStockMovementRepository creates a new stock movement repository
func NewStockMovementRepository(state *State) domainRepo.StockMovementRepository {
	return &stockMovementRepository{state: state}
}

func (r *stockMovementRepository) List(ctx context.Context) ([]entity.StockMovement, error) {
	return r.state.view(ctx).Movements, nil
}

func (r *stockMovementRepository) Append(ctx context.Context, movement entity.StockMovement) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Movements = prepend(t.staged.Movements, movement)
		t.dirty[colMovements] = true
	})
}
