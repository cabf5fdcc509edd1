package catalog

import (
	"cmp"
	"slices"

	"catalogo-plus/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two products: negative when a sorts first, zero on a tie.
type Comparator func(a, b domain.Product) int

// catalogLanguage drives title collation; the storefront copy is Spanish.
var catalogLanguage = language.Spanish

// BuildComparator returns the ordering for a sort mode. Unknown modes fall back
// to the featured ordering.
func BuildComparator(mode domain.SortMode) Comparator {
	switch mode {
	case domain.SortPriceLow:
		return func(a, b domain.Product) int {
			return priceOrZero(a.Price).Cmp(priceOrZero(b.Price))
		}
	case domain.SortPriceHigh:
		return func(a, b domain.Product) int {
			return priceOrZero(b.Price).Cmp(priceOrZero(a.Price))
		}
	case domain.SortNameAsc:
		// collate.Collator keeps internal buffers, so each comparator owns one.
		col := collate.New(catalogLanguage)
		return func(a, b domain.Product) int {
			return col.CompareString(a.Title, b.Title)
		}
	case domain.SortNameDesc:
		col := collate.New(catalogLanguage)
		return func(a, b domain.Product) int {
			return col.CompareString(b.Title, a.Title)
		}
	case domain.SortNewest:
		return func(a, b domain.Product) int {
			return cmp.Compare(b.ID, a.ID)
		}
	default:
		return func(a, b domain.Product) int {
			switch {
			case a.Featured == b.Featured:
				return 0
			case a.Featured:
				return -1
			default:
				return 1
			}
		}
	}
}

// SortProducts returns a stably sorted copy; ties keep their input order.
func SortProducts(products []domain.Product, mode domain.SortMode) []domain.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, BuildComparator(mode))
	return out
}
