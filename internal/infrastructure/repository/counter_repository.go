package repository

import (
	"context"

	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
)

type counterRepository struct {
	state *State
}

// NewCounterRepository creates a new reference counter repository
func NewCounterRepository(state *State) domainRepo.ReferenceCounter {
	return &counterRepository{state: state}
}

// Next increments and returns the named counter. Counters only ever grow,
// so references stay unique even if documents are later removed.
func (r *counterRepository) Next(ctx context.Context, name string) (int, error) {
	var next int
	err := r.state.update(ctx, func(t *tx) {
		next = t.staged.Counters[name] + 1
		t.staged.Counters[name] = next
		t.dirty[colCounters] = true
	})
	return next, err
}
