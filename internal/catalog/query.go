package catalog

import (
	"context"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
)

// Filters drives one product-screen fetch.
type Filters struct {
	Section       domain.Section
	CategoryID    int64 // manual dropdown filter, honored only when Section is "all"
	SubCategoryID int64
	Search        string
	Page          int
	Limit         int
}

// ProductLister is the slice of the API client the query builder needs.
type ProductLister interface {
	ListProducts(ctx context.Context, q api.ProductQuery) (domain.ProductPage, error)
}

// Result is a fetched product page plus the resolution that produced it.
type Result struct {
	Page domain.ProductPage

	// Resolution of the active section, empty when Section is "all".
	SectionCategoryIDs    []int64
	SectionSubcategoryIDs []int64

	// Filters that were accepted but had no effect on the request (see
	// BuildAndFetch on the subcategory omission).
	IgnoredFilters []string
}

// QueryBuilder assembles the product listing request for a filter set and
// validates what comes back.
type QueryBuilder struct {
	Products ProductLister
	Subs     *Aggregator
}

// BuildAndFetch resolves the section against the loaded categories, collects
// the section's subcategory ids, issues the list request, and warn-logs any
// returned product that falls outside the resolved sets (diagnostic only; no
// client-side re-filtering).
//
// With a section active, only category_id parameters are sent. Subcategory
// filters are deliberately omitted: the backend AND-combines category and
// subcategory filters, which would drop products assigned to a category but
// to no subcategory. A manual subcategory selection is therefore reported in
// IgnoredFilters rather than silently swallowed.
func (b *QueryBuilder) BuildAndFetch(ctx context.Context, f Filters, categories []domain.Category) (Result, error) {
	if f.Section == domain.SectionAll || f.Section == "" {
		page, err := b.Products.ListProducts(ctx, api.ProductQuery{
			CategoryID:    f.CategoryID,
			SubCategoryID: f.SubCategoryID,
			Search:        f.Search,
			Page:          f.Page,
			Limit:         f.Limit,
		})
		if err != nil {
			return Result{}, err
		}
		return Result{Page: page}, nil
	}

	catIDs := MatchCategories(f.Section, categories)
	if len(catIDs) == 0 {
		// No live category fits the section; render empty, never all.
		return Result{Page: domain.ProductPage{Products: []domain.Product{}, Page: f.Page}}, nil
	}
	subIDs := b.Subs.CollectSubcategoryIDs(ctx, catIDs)

	res := Result{
		SectionCategoryIDs:    catIDs,
		SectionSubcategoryIDs: subIDs,
	}
	if f.SubCategoryID > 0 {
		res.IgnoredFilters = append(res.IgnoredFilters, "sub_category_id")
	}
	if f.CategoryID > 0 {
		res.IgnoredFilters = append(res.IgnoredFilters, "category_id")
	}

	page, err := b.Products.ListProducts(ctx, api.ProductQuery{
		CategoryIDs: catIDs,
		Search:      f.Search,
		Page:        f.Page,
		Limit:       f.Limit,
	})
	if err != nil {
		return Result{}, err
	}
	res.Page = page

	b.validateOwnership(f.Section, page.Products, catIDs, subIDs)
	return res, nil
}

// validateOwnership checks each returned product against the resolved sets.
// Mismatches point at a backend filtering bug and are logged, not corrected.
func (b *QueryBuilder) validateOwnership(section domain.Section, products []domain.Product, catIDs, subIDs []int64) {
	cats := make(map[int64]bool, len(catIDs))
	for _, id := range catIDs {
		cats[id] = true
	}
	subs := make(map[int64]bool, len(subIDs))
	for _, id := range subIDs {
		subs[id] = true
	}
	for _, p := range products {
		if cats[p.CategoryID.Int64()] || subs[p.SubCategoryID.Int64()] {
			continue
		}
		applog.Warn(nil, "catalog.query.ownership_mismatch", nil, map[string]any{
			"section":         string(section),
			"product_id":      p.ID.Int64(),
			"category_id":     p.CategoryID.Int64(),
			"sub_category_id": p.SubCategoryID.Int64(),
		})
	}
}
