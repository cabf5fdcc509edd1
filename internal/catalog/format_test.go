package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSlug(t *testing.T) {
	tests := map[string]string{
		"marca-a":     "Marca A",
		"boots":       "Boots",
		"los-amigos":  "Los Amigos",
		"":            "",
		"x":           "X",
		"marca-ABC":   "Marca ABC",
		"niños-verde": "Niños Verde",
		"3d-print":    "3d Print",
		"marca--b":    "Marca  B",
		"élite-x":     "Élite X",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatSlug(in), in)
	}
}

func TestBrandSlug(t *testing.T) {
	assert.Equal(t, "marca-a", BrandSlug("Marca A"))
	assert.Equal(t, "marca-a", BrandSlug("  Marca   A "))
	assert.Equal(t, "dos-amigos-co", BrandSlug("Dos Amigos\tCo"))
}

func TestParsePrice(t *testing.T) {
	valid := map[string]string{
		"$129.99":    "129.99",
		"$1,299.00":  "1299",
		" $ 500 ":    "500",
		"89.99":      "89.99",
		"$0.50":      "0.5",
		"$10,000.10": "10000.1",
	}
	for raw, want := range valid {
		got, err := ParsePrice(raw)
		require.NoError(t, err, raw)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s: got %s", raw, got)
	}

	for _, raw := range []string{"", "$", "precio", "12,34.5.6", "$NaN"} {
		_, err := ParsePrice(raw)
		assert.ErrorIs(t, err, ErrInvalidPrice, raw)
	}
}

func TestPriceOrZero(t *testing.T) {
	assert.True(t, priceOrZero("consultar").IsZero())
	assert.True(t, priceOrZero("$12.00").Equal(decimal.NewFromInt(12)))
}
