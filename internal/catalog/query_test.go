package catalog

import (
	"testing"

	"catalogo-plus/internal/domain"
	"catalogo-plus/internal/repository"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Feature: catalog-engine, Property: Querying is deterministic
func TestProperty_QueryIsIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)
	modes := []domain.SortMode{
		domain.SortFeatured, domain.SortPriceLow, domain.SortPriceHigh,
		domain.SortNameAsc, domain.SortNameDesc, domain.SortNewest,
	}

	properties.Property("the same criteria over the same catalog give the same page", prop.ForAll(
		func(seeds []int, modeIdx, page int) bool {
			products := catalogFromSeeds(seeds)
			criteria := unrestricted()
			criteria.SortMode = modes[modeIdx]
			criteria.Page = page

			first := Query(products, criteria)
			second := Query(products, criteria)

			if first.TotalCount != second.TotalCount || first.TotalCount != len(products) {
				return false
			}
			a, b := ids(first.Items), ids(second.Items)
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return first.PageWindow.CurrentPage == second.PageWindow.CurrentPage
		},
		gen.SliceOf(gen.IntRange(0, 500)),
		gen.IntRange(0, len(modes)-1),
		gen.IntRange(-2, 6),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestQuery_UnrestrictedSeedCatalog(t *testing.T) {
	products := repository.SeedProducts()

	result := Query(products, unrestricted())

	assert.Equal(t, len(products), result.TotalCount)
	require.Len(t, result.Items, domain.PageSize)
	assert.Equal(t, ids(SortProducts(products, domain.SortFeatured)[:domain.PageSize]), ids(result.Items))
	assert.Equal(t, []int{5, 8, 9, 14, 19}, ids(result.Items[:5]))
	assert.Equal(t, 2, result.PageWindow.TotalPages)
	assert.Equal(t, 1, result.PageWindow.CurrentPage)
}

func TestQuery_DefaultCriteria(t *testing.T) {
	products := repository.SeedProducts()

	result := Query(products, domain.DefaultCriteria())

	assert.Equal(t, len(products), result.TotalCount)
	assert.Len(t, result.Items, domain.PageSize)
}

func TestQuery_NoMatches(t *testing.T) {
	criteria := unrestricted()
	criteria.CollectionType = domain.CollectionSearch
	criteria.CollectionValue = "inexistente"

	result := Query(repository.SeedProducts(), criteria)

	assert.Zero(t, result.TotalCount)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.PageWindow.TotalPages)
	assert.Equal(t, []domain.PageEntry{{Page: 1}}, result.PageWindow.Entries)
}

func TestQuery_FilterSortPaginate(t *testing.T) {
	criteria := unrestricted()
	criteria.CollectionType = domain.CollectionCategory
	criteria.CollectionValue = "boots"
	criteria.SortMode = domain.SortPriceHigh

	result := Query(repository.FeaturedSeedProducts(), criteria)

	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, []int{4, 1}, ids(result.Items))
}
