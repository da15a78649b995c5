package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

type listerFunc func(ctx context.Context, q api.ProductQuery) (domain.ProductPage, error)

func (f listerFunc) ListProducts(ctx context.Context, q api.ProductQuery) (domain.ProductPage, error) {
	return f(ctx, q)
}

func capturingLister(got *api.ProductQuery, page domain.ProductPage) listerFunc {
	return func(_ context.Context, q api.ProductQuery) (domain.ProductPage, error) {
		*got = q
		return page, nil
	}
}

func newBuilder(lister ProductLister, tree SubcategoryFetcher) *QueryBuilder {
	if tree == nil {
		tree = &treeFetcher{}
	}
	return &QueryBuilder{Products: lister, Subs: &Aggregator{Fetch: tree}}
}

func TestAllModePassesManualFilters(t *testing.T) {
	var got api.ProductQuery
	b := newBuilder(capturingLister(&got, domain.ProductPage{TotalPages: 3}), nil)

	res, err := b.BuildAndFetch(context.Background(), Filters{
		Section:       domain.SectionAll,
		CategoryID:    10,
		SubCategoryID: 20,
		Search:        "aviator",
		Page:          2,
		Limit:         25,
	}, storefront())
	require.NoError(t, err)

	assert.Equal(t, int64(10), got.CategoryID)
	assert.Equal(t, int64(20), got.SubCategoryID)
	assert.Equal(t, "aviator", got.Search)
	assert.Equal(t, 2, got.Page)
	assert.Empty(t, got.CategoryIDs)
	assert.Empty(t, res.SectionCategoryIDs)
	assert.Empty(t, res.IgnoredFilters)
	assert.Equal(t, 3, res.Page.TotalPages)
}

func TestSectionModeSendsCategoryIDsOnly(t *testing.T) {
	var got api.ProductQuery
	cats := []domain.Category{{ID: 10, Name: "Sunglasses"}}
	b := newBuilder(capturingLister(&got, domain.ProductPage{}), sunglassesTree())

	res, err := b.BuildAndFetch(context.Background(), Filters{
		Section:       domain.SectionSunglasses,
		CategoryID:    3,  // manual picks are ignored while a section is active
		SubCategoryID: 20, // and reported back instead of sent
		Page:          1,
	}, cats)
	require.NoError(t, err)

	assert.Equal(t, []int64{10}, got.CategoryIDs)
	assert.Zero(t, got.CategoryID)
	assert.Zero(t, got.SubCategoryID)
	assert.Equal(t, []int64{10}, res.SectionCategoryIDs)
	assert.Equal(t, []int64{20, 21, 22}, res.SectionSubcategoryIDs)
	assert.ElementsMatch(t, []string{"category_id", "sub_category_id"}, res.IgnoredFilters)
}

func TestSectionWithoutMatchSkipsFetch(t *testing.T) {
	called := false
	lister := listerFunc(func(context.Context, api.ProductQuery) (domain.ProductPage, error) {
		called = true
		return domain.ProductPage{}, nil
	})
	b := newBuilder(lister, nil)

	res, err := b.BuildAndFetch(context.Background(), Filters{
		Section: domain.SectionSunglasses,
		Page:    4,
	}, []domain.Category{{ID: 1, Name: "Gift Cards"}})
	require.NoError(t, err)

	assert.False(t, called, "no category fits the section, nothing should be fetched")
	assert.NotNil(t, res.Page.Products)
	assert.Empty(t, res.Page.Products)
	assert.Equal(t, 4, res.Page.Page)
}

func TestFetchErrorPropagates(t *testing.T) {
	boom := errors.New("bad gateway")
	lister := listerFunc(func(context.Context, api.ProductQuery) (domain.ProductPage, error) {
		return domain.ProductPage{}, boom
	})

	b := newBuilder(lister, sunglassesTree())
	_, err := b.BuildAndFetch(context.Background(), Filters{Section: domain.SectionSunglasses},
		[]domain.Category{{ID: 10, Name: "Sunglasses"}})
	assert.ErrorIs(t, err, boom)

	_, err = b.BuildAndFetch(context.Background(), Filters{Section: domain.SectionAll}, nil)
	assert.ErrorIs(t, err, boom)
}

// End to end: storefront with one sunglasses category (10), a direct
// subcategory (20) and its nested child (21); the returned page carries
// products owned by each level of the tree.
func TestSunglassesSectionEndToEnd(t *testing.T) {
	var got api.ProductQuery
	page := domain.ProductPage{
		Products: []domain.Product{
			{ID: 100, CategoryID: 10},
			{ID: 101, CategoryID: 10, SubCategoryID: 20},
			{ID: 102, SubCategoryID: 21},
		},
		TotalPages: 1,
		Page:       1,
	}
	b := newBuilder(capturingLister(&got, page), sunglassesTree())

	res, err := b.BuildAndFetch(context.Background(), Filters{
		Section: domain.SectionSunglasses,
		Page:    1,
		Limit:   10,
	}, []domain.Category{{ID: 10, Name: "Sun Glasses"}, {ID: 2, Name: "Opty Kids"}})
	require.NoError(t, err)

	assert.Equal(t, []int64{10}, got.CategoryIDs)
	assert.Len(t, res.Page.Products, 3)
	assert.Equal(t, []int64{10}, res.SectionCategoryIDs)
	assert.Contains(t, res.SectionSubcategoryIDs, int64(20))
	assert.Contains(t, res.SectionSubcategoryIDs, int64(21))
}
