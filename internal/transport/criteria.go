package transport

import (
	"net/url"
	"strconv"
	"strings"

	"catalogo-plus/internal/domain"

	"github.com/shopspring/decimal"
)

// CriteriaFromQuery builds filter criteria from a collection page query
// string. Malformed values fall back to their defaults; it never fails.
func CriteriaFromQuery(q url.Values) domain.FilterCriteria {
	c := domain.DefaultCriteria()

	c.CollectionType = domain.ParseCollectionType(q.Get("type"))
	c.CollectionValue = strings.TrimSpace(q.Get("value"))
	c.AudienceTag = strings.TrimSpace(q.Get("filter"))
	c.Categories = listParam(q, "category")
	c.Brands = listParam(q, "brand")
	c.Sizes = listParam(q, "size")
	c.Colors = listParam(q, "color")
	c.SearchTerm = strings.TrimSpace(q.Get("q"))
	c.SortMode = domain.ParseSortMode(q.Get("sort"))

	if d, ok := decimalParam(q, "price_min"); ok {
		c.PriceMin = decimal.NewNullDecimal(d)
	}
	if d, ok := decimalParam(q, "price_max"); ok {
		c.PriceMax = decimal.NewNullDecimal(d)
	}
	// The slider never lets the lower handle pass the upper one.
	if c.PriceMin.Valid && c.PriceMax.Valid && c.PriceMin.Decimal.GreaterThan(c.PriceMax.Decimal) {
		c.PriceMin = c.PriceMax
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		c.Page = page
	}

	return c
}

// listParam accepts repeated keys as well as comma-separated values.
func listParam(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Price bounds outside this exponent range are treated as malformed. Comparing
// against a value like 1e10000000 would rescale every product price to it.
const (
	minPriceExponent = -4
	maxPriceExponent = 6
)

func decimalParam(q url.Values, key string) (decimal.Decimal, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp < minPriceExponent || exp > maxPriceExponent {
		return decimal.Decimal{}, false
	}
	return d, true
}
