package repository

import (
	"errors"
	"fmt"

	"catalogo-plus/internal/domain"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductID   = errors.New("product id must be positive")
	ErrDuplicateProductID = errors.New("duplicate product id")
)

// ProductRepository defines read access to the loaded catalog
type ProductRepository interface {
	All() []domain.Product
	FindByID(id int) (domain.Product, error)
}

type productRepository struct {
	products []domain.Product
	byID     map[int]int
}

// NewProductRepository freezes a product set into a read-only repository.
// Products keep the order they were given in.
func NewProductRepository(products []domain.Product) (ProductRepository, error) {
	r := &productRepository{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidProductID, p.ID)
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProductID, p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p.Clone())
	}

	return r, nil
}

// All returns every product in insertion order. The slice and the products
// in it are copies.
func (r *productRepository) All() []domain.Product {
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out
}

// FindByID retrieves a product by ID
func (r *productRepository) FindByID(id int) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return r.products[idx].Clone(), nil
}
