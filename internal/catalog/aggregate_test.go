package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// treeFetcher serves a fixed subcategory tree and records failures to inject.
type treeFetcher struct {
	byCategory map[int64][]domain.Subcategory
	byParent   map[int64][]domain.Subcategory
	failCats   map[int64]bool
	failSubs   map[int64]bool
}

func (f *treeFetcher) SubcategoriesByCategory(_ context.Context, categoryID int64) ([]domain.Subcategory, error) {
	if f.failCats[categoryID] {
		return nil, errors.New("upstream down")
	}
	return f.byCategory[categoryID], nil
}

func (f *treeFetcher) NestedSubcategories(_ context.Context, parentID int64) ([]domain.Subcategory, error) {
	if f.failSubs[parentID] {
		return nil, errors.New("upstream down")
	}
	return f.byParent[parentID], nil
}

func sunglassesTree() *treeFetcher {
	return &treeFetcher{
		byCategory: map[int64][]domain.Subcategory{
			10: {
				{ID: 20, CategoryID: 10, Name: "Aviator"},
				{ID: 22, CategoryID: 10, Name: "Wayfarer"},
			},
		},
		byParent: map[int64][]domain.Subcategory{
			20: {{ID: 21, CategoryID: 10, Name: "Aviator Mini", ParentID: 20}},
		},
	}
}

func TestCollectWalksDirectAndNested(t *testing.T) {
	a := &Aggregator{Fetch: sunglassesTree()}
	got := a.CollectSubcategoryIDs(context.Background(), []int64{10})
	assert.Equal(t, []int64{20, 21, 22}, got)
}

func TestCollectIsIdempotent(t *testing.T) {
	a := &Aggregator{Fetch: sunglassesTree()}
	first := a.CollectSubcategoryIDs(context.Background(), []int64{10})
	second := a.CollectSubcategoryIDs(context.Background(), []int64{10})
	assert.Equal(t, first, second)
}

func TestCollectDropsForeignOwnership(t *testing.T) {
	f := sunglassesTree()
	f.byCategory[10] = append(f.byCategory[10], domain.Subcategory{ID: 30, CategoryID: 99})
	f.byParent[20] = append(f.byParent[20], domain.Subcategory{ID: 31, CategoryID: 99})

	a := &Aggregator{Fetch: f}
	got := a.CollectSubcategoryIDs(context.Background(), []int64{10})
	assert.Equal(t, []int64{20, 21, 22}, got)
}

// A nested child that declares no category of its own inherits the parent's.
func TestCollectInheritsParentOwnership(t *testing.T) {
	f := sunglassesTree()
	f.byParent[20] = []domain.Subcategory{{ID: 25, ParentID: 20}}

	a := &Aggregator{Fetch: f}
	got := a.CollectSubcategoryIDs(context.Background(), []int64{10})
	assert.Equal(t, []int64{20, 22, 25}, got)
}

func TestCollectSurvivesBranchFailures(t *testing.T) {
	f := sunglassesTree()
	f.byCategory[11] = []domain.Subcategory{{ID: 40, CategoryID: 11}}
	f.failCats = map[int64]bool{10: true}

	a := &Aggregator{Fetch: f}
	got := a.CollectSubcategoryIDs(context.Background(), []int64{10, 11})
	assert.Equal(t, []int64{40}, got)
}

func TestCollectSurvivesNestedFailure(t *testing.T) {
	f := sunglassesTree()
	f.failSubs = map[int64]bool{20: true}

	a := &Aggregator{Fetch: f}
	got := a.CollectSubcategoryIDs(context.Background(), []int64{10})
	assert.Equal(t, []int64{20, 22}, got)
}

func TestCollectSkipsInvalidIDs(t *testing.T) {
	f := &treeFetcher{
		byCategory: map[int64][]domain.Subcategory{
			10: {{ID: 0, CategoryID: 10}, {ID: 20, CategoryID: 10}},
		},
	}
	a := &Aggregator{Fetch: f}
	got := a.CollectSubcategoryIDs(context.Background(), []int64{10})
	assert.Equal(t, []int64{20}, got)
}
