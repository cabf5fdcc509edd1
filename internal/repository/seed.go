package repository

import (
	"fmt"

	"catalogo-plus/internal/domain"
)

const placeholderImageURL = "/api/placeholder/800/500?text="

var (
	seedCategories = []string{"boots", "hats", "jackets", "accessories"}
	seedBrands     = []string{"Marca A", "Marca B", "Marca C", "Marca D"}
	seedAudiences  = []string{"hombre", "mujer", "niños", "unisex"}
	seedStyles     = []string{"casual", "formal", "deportivo"}

	seedPalettes = [][]string{
		{"#e74c3c", "#3498db", "#2ecc71"},
		{"#2c3e50", "#9b59b6"},
		{"#f1c40f", "#e67e22", "#95a5a6"},
		{"#34495e", "#16a085"},
	}
	seedSizeRuns = [][]string{
		{"S", "M", "L"},
		{"M", "L", "XL"},
		{"S", "M", "L", "XL"},
		{"XS", "S", "M"},
	}
	seedBadges = []domain.Badge{
		{Text: "Nuevo", Color: "#e74c3c"},
		{Text: "-20%", Color: "#f39c12"},
		{Text: "Popular", Color: "#27ae60"},
	}
)

// SeedProducts returns the built-in storefront catalog: eight curated
// products followed by generated ones up to id 20.
func SeedProducts() []domain.Product {
	products := FeaturedSeedProducts()
	for id := len(products) + 1; id <= 20; id++ {
		products = append(products, additionalProduct(id))
	}
	return products
}

// FeaturedSeedProducts returns the eight curated products of the home page.
func FeaturedSeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Brand:       "Marca A",
			Title:       "Producto Premium 1",
			Price:       "$129.99",
			OldPrice:    "$159.99",
			Description: "Este producto premium está fabricado con materiales de alta calidad y diseñado para ofrecer máxima comodidad y estilo. Perfecto para cualquier ocasión y compatible con una amplia variedad de combinaciones de vestimenta.",
			Colors:      []string{"#e74c3c", "#3498db", "#2ecc71"},
			Sizes:       []string{"S", "M", "L"},
			Images:      productImages(1),
			Badge:       &domain.Badge{Text: "Nuevo", Color: "#e74c3c"},
			Category:    "boots",
			Tags:        []string{"calzado", "hombre", "casual"},
		},
		{
			ID:          2,
			Brand:       "Marca B",
			Title:       "Producto Especial 2",
			Price:       "$89.99",
			OldPrice:    "$105.99",
			Description: "Producto especial con características únicas que lo distinguen de otros similares en el mercado. Su diseño innovador y materiales seleccionados garantizan una experiencia excepcional.",
			Colors:      []string{"#2c3e50", "#9b59b6"},
			Sizes:       []string{"M", "L", "XL"},
			Images:      productImages(2),
			Badge:       &domain.Badge{Text: "-15%", Color: "#f39c12"},
			Category:    "hats",
			Tags:        []string{"accesorios", "unisex", "casual"},
		},
		{
			ID:          3,
			Brand:       "Marca C",
			Title:       "Producto Elite 3",
			Price:       "$199.99",
			Description: "Producto de la línea elite, diseñado para quienes buscan lo mejor en calidad y rendimiento. Sus características premium satisfacen las expectativas más exigentes del mercado actual.",
			Colors:      []string{"#f1c40f", "#e67e22", "#95a5a6"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Images:      productImages(3),
			Category:    "jackets",
			Tags:        []string{"ropa", "hombre", "formal"},
		},
		{
			ID:          4,
			Brand:       "Marca D",
			Title:       "Producto Superior 4",
			Price:       "$149.99",
			OldPrice:    "$179.99",
			Description: "Producto superior con acabados de alta gama y materiales seleccionados. Su diseño ergonómico y estética sofisticada lo convierten en una opción ideal para quienes valoran la calidad y el estilo.",
			Colors:      []string{"#34495e", "#16a085"},
			Sizes:       []string{"S", "M", "L"},
			Images:      productImages(4),
			Badge:       &domain.Badge{Text: "Top", Color: "#27ae60"},
			Category:    "boots",
			Tags:        []string{"calzado", "mujer", "formal"},
		},
		{
			ID:          5,
			Brand:       "Marca A",
			Title:       "Producto Estrella 1",
			Price:       "$219.99",
			Description: "Producto estrella de nuestra marca, reconocido por su excelente relación calidad-precio y diseño innovador. Es uno de los más solicitados por nuestros clientes habituales.",
			Colors:      []string{"#e74c3c", "#3498db", "#2ecc71"},
			Sizes:       []string{"S", "M", "L"},
			Images:      productImages(5),
			Badge:       &domain.Badge{Text: "Best Seller", Color: "#8e44ad"},
			Category:    "accessories",
			Featured:    true,
			TopSeller:   true,
			Tags:        []string{"accesorios", "unisex", "casual"},
		},
		{
			ID:          6,
			Brand:       "Marca B",
			Title:       "Producto Estrella 2",
			Price:       "$179.99",
			OldPrice:    "$209.99",
			Description: "Este producto estrella combina tecnología avanzada y diseño elegante. Su popularidad se debe a su versatilidad y durabilidad excepcional que lo convierte en una inversión inteligente.",
			Colors:      []string{"#2c3e50", "#9b59b6"},
			Sizes:       []string{"M", "L", "XL"},
			Images:      productImages(6),
			Badge:       &domain.Badge{Text: "Best Seller", Color: "#8e44ad"},
			Category:    "hats",
			TopSeller:   true,
			Tags:        []string{"accesorios", "hombre", "casual"},
		},
		{
			ID:          7,
			Brand:       "Marca C",
			Title:       "Producto Estrella 3",
			Price:       "$159.99",
			Description: "Uno de nuestros productos estrella más vendidos, apreciado por su equilibrio perfecto entre funcionalidad y estética. Ideal para uso diario y ocasiones especiales.",
			Colors:      []string{"#f1c40f", "#e67e22"},
			Sizes:       []string{"S", "M", "L"},
			Images:      productImages(7),
			Badge:       &domain.Badge{Text: "Best Seller", Color: "#8e44ad"},
			Category:    "jackets",
			TopSeller:   true,
			Tags:        []string{"ropa", "mujer", "casual"},
		},
		{
			ID:          8,
			Brand:       "Marca D",
			Title:       "Producto Estrella 4",
			Price:       "$189.99",
			OldPrice:    "$219.99",
			Description: "Producto estrella premium con características exclusivas. Su innovador diseño y calidad superior lo han convertido en un referente en su categoría y uno de los favoritos de nuestros clientes.",
			Colors:      []string{"#34495e", "#16a085"},
			Sizes:       []string{"S", "M", "L"},
			Images:      productImages(8),
			Badge:       &domain.Badge{Text: "Best Seller", Color: "#8e44ad"},
			Category:    "accessories",
			Featured:    true,
			TopSeller:   true,
			Tags:        []string{"accesorios", "niños", "casual"},
		},
	}
}

// additionalProduct derives a filler product from its id so the collection
// page has enough items to paginate. Every attribute cycles through the
// storefront vocabularies at a different stride.
func additionalProduct(id int) domain.Product {
	k := id - 9
	price := 50 + (k*37)%150

	p := domain.Product{
		ID:          id,
		Brand:       seedBrands[k%len(seedBrands)],
		Title:       fmt.Sprintf("Producto Adicional %d", id),
		Price:       fmt.Sprintf("$%d.00", price),
		Description: "Este es un producto adicional para demostrar la página de colección. Incluye diferentes categorías, marcas y características para mostrar la funcionalidad de filtrado.",
		Colors:      append([]string(nil), seedPalettes[(k+1)%len(seedPalettes)]...),
		Sizes:       append([]string(nil), seedSizeRuns[(k*3)%len(seedSizeRuns)]...),
		Images:      productImages(id),
		Category:    seedCategories[(k/2+k)%len(seedCategories)],
		Featured:    k%5 == 0,
		TopSeller:   k%6 == 5,
		Tags: []string{
			seedCategories[(k+1)%len(seedCategories)],
			seedAudiences[k%len(seedAudiences)],
			seedStyles[k%len(seedStyles)],
		},
	}
	if k%2 == 0 {
		p.OldPrice = fmt.Sprintf("$%d.00", price+30+k)
	}
	if k%3 == 0 {
		b := seedBadges[(k/3)%len(seedBadges)]
		p.Badge = &b
	}
	return p
}

func productImages(id int) []string {
	return []string{
		fmt.Sprintf("%sProducto+%d", placeholderImageURL, id),
		fmt.Sprintf("%sProducto+%d+Vista+2", placeholderImageURL, id),
		fmt.Sprintf("%sProducto+%d+Vista+3", placeholderImageURL, id),
		fmt.Sprintf("%sProducto+%d+Vista+4", placeholderImageURL, id),
	}
}
