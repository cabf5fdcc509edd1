package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"catalogo-plus/internal/domain"
)

// ProductStore loads and seeds the catalog from PostgreSQL. The engine never
// queries it per request: the rows are read once and frozen into a
// ProductRepository.
type ProductStore interface {
	Create(ctx context.Context, product domain.Product) error
	FindByID(ctx context.Context, id int) (domain.Product, error)
	LoadAll(ctx context.Context) ([]domain.Product, error)
	Count(ctx context.Context) (int, error)
}

type productStore struct {
	db *sql.DB
}

// NewProductStore creates a new instance of ProductStore
func NewProductStore(db *sql.DB) ProductStore {
	return &productStore{db: db}
}

const productColumns = `id, brand, title, price, old_price, description, colors, sizes, images,
		badge_text, badge_color, category, featured, top_seller, tags`

// Create inserts a product using parameterized queries. List attributes are
// stored as JSONB arrays.
func (s *productStore) Create(ctx context.Context, product domain.Product) error {
	if product.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidProductID, product.ID)
	}

	lists, err := encodeLists(product.Colors, product.Sizes, product.Images, product.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode product %d: %w", product.ID, err)
	}

	var badgeText, badgeColor sql.NullString
	if product.Badge != nil {
		badgeText = sql.NullString{String: product.Badge.Text, Valid: true}
		badgeColor = sql.NullString{String: product.Badge.Color, Valid: true}
	}

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = s.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Brand,
		product.Title,
		product.Price,
		product.OldPrice,
		product.Description,
		lists[0],
		lists[1],
		lists[2],
		badgeText,
		badgeColor,
		product.Category,
		product.Featured,
		product.TopSeller,
		lists[3],
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID retrieves a single product row
func (s *productStore) FindByID(ctx context.Context, id int) (domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// LoadAll returns every product in insertion order.
func (s *productStore) LoadAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY position ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Count returns the number of stored products
func (s *productStore) Count(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// SeedIfEmpty writes the given products when the table has no rows and
// reports how many were inserted.
func SeedIfEmpty(ctx context.Context, store ProductStore, products []domain.Product) (int, error) {
	total, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}

	for _, p := range products {
		if err := store.Create(ctx, p); err != nil {
			return 0, fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
	}
	return len(products), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p                          domain.Product
		colors, sizes, images, tgs []byte
		badgeText, badgeColor      sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Brand,
		&p.Title,
		&p.Price,
		&p.OldPrice,
		&p.Description,
		&colors,
		&sizes,
		&images,
		&badgeText,
		&badgeColor,
		&p.Category,
		&p.Featured,
		&p.TopSeller,
		&tgs,
	)
	if err != nil {
		return domain.Product{}, err
	}

	targets := []*[]string{&p.Colors, &p.Sizes, &p.Images, &p.Tags}
	for i, raw := range [][]byte{colors, sizes, images, tgs} {
		if err := json.Unmarshal(raw, targets[i]); err != nil {
			return domain.Product{}, fmt.Errorf("failed to decode product %d: %w", p.ID, err)
		}
	}
	if len(p.Tags) == 0 {
		p.Tags = nil
	}

	if badgeText.Valid {
		p.Badge = &domain.Badge{Text: badgeText.String, Color: badgeColor.String}
	}

	return p, nil
}

func encodeLists(lists ...[]string) ([]string, error) {
	out := make([]string, len(lists))
	for i, l := range lists {
		if l == nil {
			l = []string{}
		}
		b, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		out[i] = string(b)
	}
	return out, nil
}
