package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrInvalidPrice = errors.New("invalid price")

var priceCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// FormatSlug turns a URL slug into its display label: "marca-a" becomes "Marca A".
// Only the first character of each hyphen-separated word is upper-cased, so
// "3d-print" stays "3d Print".
func FormatSlug(slug string) string {
	if slug == "" {
		return ""
	}
	upper := cases.Upper(language.Und)
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(string(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

// BrandSlug is the inverse direction used by brand checkboxes: lower-case with
// whitespace runs collapsed into hyphens.
func BrandSlug(brand string) string {
	return strings.Join(strings.Fields(strings.ToLower(brand)), "-")
}

// ParsePrice reads a display price such as "$1,299.99" into a decimal amount.
func ParsePrice(raw string) (decimal.Decimal, error) {
	cleaned := priceCleaner.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidPrice)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %v", ErrInvalidPrice, raw, err)
	}
	return d, nil
}

// priceOrZero is the sort-time view of a price: unparsable amounts rank as zero.
func priceOrZero(raw string) decimal.Decimal {
	d, err := ParsePrice(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
