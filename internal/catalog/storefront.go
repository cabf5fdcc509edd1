package catalog

import (
	"fmt"
	"strings"

	"catalogo-plus/internal/domain"
)

const (
	storeName    = "Dos Amigos"
	homeGridSize = 4
	notAvailable = "No disponible"
)

var categoryLabels = map[string]string{
	"boots":       "Botas",
	"hats":        "Sombreros",
	"jackets":     "Chamarras",
	"accessories": "Accesorios",
}

// CollectionHeading is the title block of a collection page
type CollectionHeading struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	PageTitle   string `json:"page_title"`
}

// DescribeCollection builds the heading, description and document title for
// a collection page.
func DescribeCollection(t domain.CollectionType, value string) CollectionHeading {
	var h CollectionHeading
	switch t {
	case domain.CollectionCategory:
		h.Heading = FormatSlug(value)
		h.Description = fmt.Sprintf("Explora nuestra colección de %s.", strings.ToLower(h.Heading))
	case domain.CollectionBrand:
		h.Heading = FormatSlug(value)
		h.Description = fmt.Sprintf("Descubre todos los productos de la marca %s.", h.Heading)
	case domain.CollectionSearch:
		h.Heading = fmt.Sprintf("Resultados de búsqueda: \"%s\"", value)
		h.Description = "Productos encontrados para tu búsqueda."
	default:
		h.Heading = "Todos los Productos"
		h.Description = "Explora nuestra colección completa de productos."
	}
	h.PageTitle = storeName + " - " + h.Heading
	return h
}

// CategoryLabel returns the Spanish display name of a category slug.
func CategoryLabel(slug string) string {
	if slug == "" {
		return notAvailable
	}
	if label, ok := categoryLabels[slug]; ok {
		return label
	}
	return slug
}

// JoinOrUnavailable renders a list attribute for the comparison table.
func JoinOrUnavailable(values []string) string {
	if len(values) == 0 {
		return notAvailable
	}
	return strings.Join(values, ", ")
}

// ResultSummary is the notification shown after filters are applied.
func ResultSummary(count int) string {
	switch count {
	case 0:
		return "No se encontraron productos con los filtros seleccionados"
	case 1:
		return "Se encontró 1 producto"
	default:
		return fmt.Sprintf("Se encontraron %d productos", count)
	}
}

// HomeHighlights holds the product sections of the home page
type HomeHighlights struct {
	Grid       []domain.Product `json:"grid"`
	TopSellers []domain.Product `json:"top_sellers"`
}

// Highlights picks the home grid (first products in catalog order) and the
// top-seller carousel.
func Highlights(products []domain.Product) HomeHighlights {
	h := HomeHighlights{
		Grid:       make([]domain.Product, 0, homeGridSize),
		TopSellers: []domain.Product{},
	}
	for i, p := range products {
		if i < homeGridSize {
			h.Grid = append(h.Grid, p)
		}
		if p.TopSeller {
			h.TopSellers = append(h.TopSellers, p)
		}
	}
	return h
}
