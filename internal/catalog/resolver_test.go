package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// A resolve that is still in flight when a newer one starts must come back
// as superseded, never as a stale page over the newer filters.
func TestResolveLatestWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)

	lister := listerFunc(func(ctx context.Context, q api.ProductQuery) (domain.ProductPage, error) {
		started <- struct{}{}
		if q.Search == "slow" {
			select {
			case <-release:
			case <-ctx.Done():
			}
		}
		return domain.ProductPage{Page: q.Page}, nil
	})

	r := &Resolver{Query: newBuilder(lister, nil)}

	type outcome struct {
		res domain.ProductPage
		err error
	}
	slow := make(chan outcome, 1)
	go func() {
		res, err := r.Resolve(context.Background(), Filters{Section: domain.SectionAll, Search: "slow", Page: 1}, nil)
		slow <- outcome{res.Page, err}
	}()

	<-started // the slow resolve is in flight

	res, err := r.Resolve(context.Background(), Filters{Section: domain.SectionAll, Page: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page.Page)

	close(release)
	got := <-slow
	assert.ErrorIs(t, got.err, ErrSuperseded)
}

// Starting a new resolve cancels the previous request's context so the slow
// fetch stops waiting on the wire.
func TestResolveCancelsPrevious(t *testing.T) {
	canceled := make(chan struct{}, 1)
	started := make(chan struct{}, 2)

	lister := listerFunc(func(ctx context.Context, q api.ProductQuery) (domain.ProductPage, error) {
		started <- struct{}{}
		if q.Search == "slow" {
			select {
			case <-ctx.Done():
				canceled <- struct{}{}
			case <-time.After(5 * time.Second):
				t.Error("previous resolve was never canceled")
			}
		}
		return domain.ProductPage{}, nil
	})

	r := &Resolver{Query: newBuilder(lister, nil)}

	go func() {
		_, _ = r.Resolve(context.Background(), Filters{Section: domain.SectionAll, Search: "slow"}, nil)
	}()
	<-started

	_, err := r.Resolve(context.Background(), Filters{Section: domain.SectionAll}, nil)
	require.NoError(t, err)

	select {
	case <-canceled:
	case <-time.After(5 * time.Second):
		t.Fatal("cancellation never observed")
	}
}

func TestResolveSequentialIsClean(t *testing.T) {
	var got api.ProductQuery
	r := &Resolver{Query: newBuilder(capturingLister(&got, domain.ProductPage{Page: 3}), nil)}

	for i := 0; i < 3; i++ {
		res, err := r.Resolve(context.Background(), Filters{Section: domain.SectionAll, Page: 3}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Page.Page)
	}
}
