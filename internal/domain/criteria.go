package domain

import "github.com/shopspring/decimal"

// PageSize is the fixed number of products per catalog page.
const PageSize = 12

// Bounds of the storefront price slider.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 500
)

// AllValues marks a category or brand set as unrestricted.
const AllValues = "all"

// CollectionType selects the collection a listing is scoped to
type CollectionType string

const (
	CollectionAll      CollectionType = "all"
	CollectionCategory CollectionType = "category"
	CollectionBrand    CollectionType = "brand"
	CollectionSearch   CollectionType = "search"
)

// SortMode selects the ordering of a listing
type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
	SortNewest    SortMode = "newest"
)

// ParseSortMode maps a raw value to a known mode, defaulting to featured.
func ParseSortMode(s string) SortMode {
	switch m := SortMode(s); m {
	case SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc, SortNewest:
		return m
	default:
		return SortFeatured
	}
}

// ParseCollectionType maps a raw value to a known type, defaulting to all.
func ParseCollectionType(s string) CollectionType {
	switch t := CollectionType(s); t {
	case CollectionCategory, CollectionBrand, CollectionSearch:
		return t
	default:
		return CollectionAll
	}
}

// FilterCriteria is the snapshot of every user-chosen filter, sort and page
// parameter for one catalog query. It is rebuilt for each request.
type FilterCriteria struct {
	CollectionType  CollectionType      `json:"type"`
	CollectionValue string              `json:"value,omitempty"`
	AudienceTag     string              `json:"filter,omitempty"`
	Categories      []string            `json:"categories,omitempty"`
	Brands          []string            `json:"brands,omitempty"`
	PriceMin        decimal.NullDecimal `json:"price_min"`
	PriceMax        decimal.NullDecimal `json:"price_max"`
	Sizes           []string            `json:"sizes,omitempty"`
	Colors          []string            `json:"colors,omitempty"`
	SearchTerm      string              `json:"q,omitempty"`
	SortMode        SortMode            `json:"sort"`
	Page            int                 `json:"page"`
}

// DefaultCriteria returns the criteria the collection page starts from.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		CollectionType: CollectionAll,
		PriceMin:       decimal.NewNullDecimal(decimal.NewFromInt(DefaultPriceMin)),
		PriceMax:       decimal.NewNullDecimal(decimal.NewFromInt(DefaultPriceMax)),
		SortMode:       SortFeatured,
		Page:           1,
	}
}

// PageEntry is one slot of the pagination control: a page number or an ellipsis.
type PageEntry struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageWindow is the compressed page navigation for a result set.
type PageWindow struct {
	Entries     []PageEntry `json:"entries"`
	CurrentPage int         `json:"current_page"`
	TotalPages  int         `json:"total_pages"`
}
