package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// ErrSuperseded reports that a newer resolve started while this one was in
// flight; the caller should drop the result.
var ErrSuperseded = errors.New("catalog: resolve superseded by a newer request")

// Resolver guards the product screen against the slow-response race: when
// filters change rapidly, starting a new resolve cancels the previous
// in-flight request, and a resolve that finishes after being superseded
// returns ErrSuperseded instead of stale data.
type Resolver struct {
	Query *QueryBuilder

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func (r *Resolver) Resolve(ctx context.Context, f Filters, categories []domain.Category) (Result, error) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	res, err := r.Query.BuildAndFetch(ctx, f, categories)

	r.mu.Lock()
	stale := gen != r.gen
	if !stale {
		cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	if stale {
		return Result{}, ErrSuperseded
	}
	return res, err
}
