package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
)

type quoteRepository struct {
	state *State
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(state *State) domainRepo.QuoteRepository {
	return &quoteRepository{state: state}
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	d := r.state.view(ctx)
	return findWhere(d.Quotes, func(q *entity.Quote) bool { return q.ID == id }), nil
}

func (r *quoteRepository) GetByReference(ctx context.Context, reference string) (*entity.Quote, error) {
	d := r.state.view(ctx)
	return findWhere(d.Quotes, func(q *entity.Quote) bool { return q.Reference == reference }), nil
}

func (r *quoteRepository) List(ctx context.Context) ([]entity.Quote, error) {
	return r.state.view(ctx).Quotes, nil
}

func (r *quoteRepository) Upsert(ctx context.Context, quote *entity.Quote) error {
	return r.state.update(ctx, func(t *tx) {
		t.staged.Quotes = replaceWhere(t.staged.Quotes,
			func(q *entity.Quote) bool { return q.ID == quote.ID }, *quote)
		t.dirty[colQuotes] = true
	})
}
