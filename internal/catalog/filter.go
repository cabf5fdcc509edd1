package catalog

import (
	"strings"

	"catalogo-plus/internal/domain"

	"github.com/shopspring/decimal"
)

// Predicate reports whether a product belongs to a result set.
type Predicate func(domain.Product) bool

// BuildPredicate composes every filter clause of the criteria into one
// predicate. Clauses are evaluated in a fixed order and all of them must pass.
func BuildPredicate(c domain.FilterCriteria) Predicate {
	clauses := []Predicate{
		collectionClause(c.CollectionType, c.CollectionValue),
		audienceClause(c.AudienceTag),
		membershipClause(c.Categories, func(p domain.Product) string { return p.Category }),
		membershipClause(c.Brands, func(p domain.Product) string { return BrandSlug(p.Brand) }),
		priceClause(c.PriceMin, c.PriceMax),
		sizeClause(c.Sizes),
		colorClause(c.Colors),
		searchClause(c.SearchTerm),
	}

	return func(p domain.Product) bool {
		for _, clause := range clauses {
			if !clause(p) {
				return false
			}
		}
		return true
	}
}

// Filter returns the products accepted by the predicate, preserving order.
func Filter(products []domain.Product, pred Predicate) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func pass(domain.Product) bool { return true }

func collectionClause(t domain.CollectionType, value string) Predicate {
	switch t {
	case domain.CollectionCategory:
		return func(p domain.Product) bool { return p.Category == value }
	case domain.CollectionBrand:
		label := FormatSlug(value)
		return func(p domain.Product) bool { return strings.EqualFold(p.Brand, label) }
	case domain.CollectionSearch:
		return searchClause(value)
	default:
		return pass
	}
}

func audienceClause(tag string) Predicate {
	if tag == "" {
		return pass
	}
	return func(p domain.Product) bool {
		for _, t := range p.Tags {
			if t == tag {
				return true
			}
		}
		return false
	}
}

// membershipClause backs the category and brand checkbox groups, where an
// empty selection or the "all" box means no restriction. Both sides are
// compared lower-cased.
func membershipClause(selected []string, key func(domain.Product) string) Predicate {
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == domain.AllValues {
			return pass
		}
		if s != "" {
			set[s] = struct{}{}
		}
	}
	if len(set) == 0 {
		return pass
	}
	return func(p domain.Product) bool {
		_, ok := set[strings.ToLower(key(p))]
		return ok
	}
}

func priceClause(lo, hi decimal.NullDecimal) Predicate {
	if !lo.Valid && !hi.Valid {
		return pass
	}
	return func(p domain.Product) bool {
		price, err := ParsePrice(p.Price)
		if err != nil {
			return false
		}
		if lo.Valid && price.LessThan(lo.Decimal) {
			return false
		}
		if hi.Valid && price.GreaterThan(hi.Decimal) {
			return false
		}
		return true
	}
}

func sizeClause(sizes []string) Predicate {
	set := toSet(sizes, strings.ToLower)
	if len(set) == 0 {
		return pass
	}
	return func(p domain.Product) bool {
		for _, s := range p.Sizes {
			if _, ok := set[strings.ToLower(s)]; ok {
				return true
			}
		}
		return false
	}
}

func colorClause(colors []string) Predicate {
	set := toSet(colors, func(s string) string { return s })
	if len(set) == 0 {
		return pass
	}
	return func(p domain.Product) bool {
		for _, c := range p.Colors {
			if _, ok := set[c]; ok {
				return true
			}
		}
		return false
	}
}

func searchClause(term string) Predicate {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return pass
	}
	return func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	}
}

func toSet(values []string, norm func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		set[norm(v)] = struct{}{}
	}
	return set
}
