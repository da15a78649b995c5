package catalog

import (
	"context"
	"sort"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
)

// SubcategoryFetcher is the slice of the API client the aggregator needs.
type SubcategoryFetcher interface {
	SubcategoriesByCategory(ctx context.Context, categoryID int64) ([]domain.Subcategory, error)
	NestedSubcategories(ctx context.Context, parentID int64) ([]domain.Subcategory, error)
}

// Aggregator flattens the subcategory trees of a set of categories into one
// deduplicated id set. Aggregation is best-effort: a failed branch fetch
// contributes nothing instead of failing the whole collection.
type Aggregator struct {
	Fetch SubcategoryFetcher
}

// CollectSubcategoryIDs walks each category's direct subcategories and their
// children. An id is kept only when its transitive category ownership lands
// inside categoryIDs; this guards against cross-category leakage when the
// backend's parent/child linkage is inconsistent. The result is sorted so
// equal inputs against unchanged data yield identical slices.
func (a *Aggregator) CollectSubcategoryIDs(ctx context.Context, categoryIDs []int64) []int64 {
	owned := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		owned[id] = true
	}

	seen := map[int64]bool{}
	for _, catID := range categoryIDs {
		subs, err := a.Fetch.SubcategoriesByCategory(ctx, catID)
		if err != nil {
			applog.Warn(nil, "catalog.aggregate.category_branch", err, map[string]any{"category_id": catID})
			continue
		}
		for _, sub := range subs {
			if !sub.ID.Valid() {
				continue
			}
			if sub.CategoryID.Valid() && !owned[sub.CategoryID.Int64()] {
				continue
			}
			seen[sub.ID.Int64()] = true

			children, err := a.Fetch.NestedSubcategories(ctx, sub.ID.Int64())
			if err != nil {
				applog.Warn(nil, "catalog.aggregate.nested_branch", err, map[string]any{"parent_id": sub.ID.Int64()})
				continue
			}
			for _, child := range children {
				if !child.ID.Valid() {
					continue
				}
				// Nested ownership may be declared directly or inherited
				// through the parent.
				if child.CategoryID.Valid() {
					if !owned[child.CategoryID.Int64()] {
						continue
					}
				} else if sub.CategoryID.Valid() && !owned[sub.CategoryID.Int64()] {
					continue
				}
				seen[child.ID.Int64()] = true
			}
		}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
