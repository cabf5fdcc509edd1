package catalog

import (
	"fmt"

	"catalogo-plus/internal/domain"
)

var (
	testCategories = []string{"boots", "hats", "jackets", "accessories"}
	testBrands     = []string{"Marca A", "Marca B", "Marca C"}
	testSizes      = [][]string{nil, {"S"}, {"M", "L"}, {"s", "XL"}}
	testColors     = [][]string{nil, {"#e74c3c"}, {"#3498db", "#2ecc71"}}
	testPrices     = []string{"$129.99", "$89.99", "$1,299.00", "$0.50", "precio", "$500", "$149.99"}
)

// catalogFromSeeds builds products with ids 1..n whose attributes are derived
// from the generated seeds.
func catalogFromSeeds(seeds []int) []domain.Product {
	products := make([]domain.Product, len(seeds))
	for i, s := range seeds {
		products[i] = domain.Product{
			ID:          i + 1,
			Brand:       testBrands[s%len(testBrands)],
			Title:       fmt.Sprintf("Producto %d", s%17),
			Price:       testPrices[s%len(testPrices)],
			Description: "descripción",
			Colors:      testColors[s%len(testColors)],
			Sizes:       testSizes[(s/3)%len(testSizes)],
			Category:    testCategories[(s/5)%len(testCategories)],
			Featured:    s%4 == 0,
			Tags:        []string{"unisex"},
		}
	}
	return products
}

func unrestricted() domain.FilterCriteria {
	return domain.FilterCriteria{
		CollectionType: domain.CollectionAll,
		SortMode:       domain.SortFeatured,
		Page:           1,
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func numbered(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{ID: i + 1, Title: fmt.Sprintf("Producto %02d", i+1), Price: "$10.00"}
	}
	return products
}
