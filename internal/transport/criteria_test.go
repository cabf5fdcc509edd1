package transport

import (
	"net/url"
	"testing"

	"catalogo-plus/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaFromQuery_Defaults(t *testing.T) {
	c := CriteriaFromQuery(url.Values{})
	assert.Equal(t, domain.DefaultCriteria(), c)
}

func TestCriteriaFromQuery_AllKeys(t *testing.T) {
	q, err := url.ParseQuery("type=brand&value=marca-a&filter=mujer&category=boots,hats&category=jackets" +
		"&brand=marca-b&price_min=20.5&price_max=150&size=M&color=%23e74c3c&q=premium&sort=price-high&page=3")
	require.NoError(t, err)

	c := CriteriaFromQuery(q)

	assert.Equal(t, domain.CollectionBrand, c.CollectionType)
	assert.Equal(t, "marca-a", c.CollectionValue)
	assert.Equal(t, "mujer", c.AudienceTag)
	assert.Equal(t, []string{"boots", "hats", "jackets"}, c.Categories)
	assert.Equal(t, []string{"marca-b"}, c.Brands)
	assert.True(t, c.PriceMin.Decimal.Equal(decimal.RequireFromString("20.5")))
	assert.True(t, c.PriceMax.Decimal.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, []string{"M"}, c.Sizes)
	assert.Equal(t, []string{"#e74c3c"}, c.Colors)
	assert.Equal(t, "premium", c.SearchTerm)
	assert.Equal(t, domain.SortPriceHigh, c.SortMode)
	assert.Equal(t, 3, c.Page)
}

func TestCriteriaFromQuery_MalformedValuesFallBack(t *testing.T) {
	q, err := url.ParseQuery("type=shelf&sort=random&page=two&price_min=abc&price_max=")
	require.NoError(t, err)

	c := CriteriaFromQuery(q)

	assert.Equal(t, domain.CollectionAll, c.CollectionType)
	assert.Equal(t, domain.SortFeatured, c.SortMode)
	assert.Equal(t, 1, c.Page)
	assert.True(t, c.PriceMin.Decimal.Equal(decimal.NewFromInt(domain.DefaultPriceMin)))
	assert.True(t, c.PriceMax.Decimal.Equal(decimal.NewFromInt(domain.DefaultPriceMax)))
}

// Feature: catalog-api, Property: The price range is never inverted
func TestProperty_PriceMinNeverExceedsMax(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("price_min is clamped to price_max", prop.ForAll(
		func(lo int, hi int) bool {
			q := url.Values{}
			q.Set("price_min", decimal.NewFromInt(int64(lo)).String())
			q.Set("price_max", decimal.NewFromInt(int64(hi)).String())

			c := CriteriaFromQuery(q)
			if c.PriceMin.Decimal.GreaterThan(c.PriceMax.Decimal) {
				return false
			}
			if lo <= hi {
				return c.PriceMin.Decimal.Equal(decimal.NewFromInt(int64(lo)))
			}
			return c.PriceMin.Decimal.Equal(decimal.NewFromInt(int64(hi)))
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCriteriaFromQuery_ExtremeExponentsFallBack(t *testing.T) {
	for _, raw := range []string{"1e10000000", "1E7", "5e-10000000", "0.000001"} {
		t.Run(raw, func(t *testing.T) {
			q := url.Values{}
			q.Set("price_min", raw)
			q.Set("price_max", raw)

			c := CriteriaFromQuery(q)

			assert.True(t, c.PriceMin.Decimal.Equal(decimal.NewFromInt(domain.DefaultPriceMin)))
			assert.True(t, c.PriceMax.Decimal.Equal(decimal.NewFromInt(domain.DefaultPriceMax)))
		})
	}

	q := url.Values{}
	q.Set("price_max", "1e3")
	c := CriteriaFromQuery(q)
	assert.True(t, c.PriceMax.Decimal.Equal(decimal.NewFromInt(1000)))
}
