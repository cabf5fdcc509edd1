package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"catalogo-plus/internal/catalog"
	"catalogo-plus/internal/domain"
	"catalogo-plus/internal/repository"
	"catalogo-plus/internal/storage"

	"go.uber.org/zap"
)

const (
	// MaxComparison is the largest number of products compared side by side.
	MaxComparison = 4
	// MinComparison is the smallest number of products worth a comparison table.
	MinComparison = 2
)

// Kind names a shortlist
type Kind string

const (
	KindFavorites Kind = "favorites"
	KindCompare   Kind = "compare"
)

var storageKeys = map[Kind]string{
	KindFavorites: "favoriteProducts",
	KindCompare:   "compareProducts",
}

var (
	ErrAlreadyInComparison = errors.New("product already in comparison")
	ErrComparisonFull      = errors.New("comparison is full")
	ErrNotEnoughToCompare  = errors.New("not enough products to compare")
	ErrUnknownShortlist    = errors.New("unknown shortlist")
	ErrInvalidClientID     = errors.New("invalid client id")
)

// ComparedProduct is a product with the display values of the comparison table
type ComparedProduct struct {
	domain.Product
	CategoryLabel string `json:"category_label"`
	ColorSummary  string `json:"color_summary"`
	SizeSummary   string `json:"size_summary"`
}

// CompareRow is one attribute across every compared product
type CompareRow struct {
	Property string   `json:"property"`
	Values   []string `json:"values"`
}

// CompareTable is the side-by-side comparison view
type CompareTable struct {
	Products []ComparedProduct `json:"products"`
	Rows     []CompareRow      `json:"rows"`
}

// Snapshot holds both shortlists of a client
type Snapshot struct {
	Favorites []domain.Product  `json:"favorites"`
	Compare   []ComparedProduct `json:"compare"`
}

// ShortlistService manages the per-client favorites and comparison lists
type ShortlistService interface {
	ToggleFavorite(ctx context.Context, clientID string, productID int) (added bool, err error)
	RemoveFavorite(ctx context.Context, clientID string, productID int) error
	ClearFavorites(ctx context.Context, clientID string) error
	Favorites(ctx context.Context, clientID string) ([]domain.Product, error)

	AddToComparison(ctx context.Context, clientID string, productID int) error
	RemoveFromComparison(ctx context.Context, clientID string, productID int) error
	ClearComparison(ctx context.Context, clientID string) error
	Comparison(ctx context.Context, clientID string) ([]ComparedProduct, error)
	CompareTable(ctx context.Context, clientID string) (CompareTable, error)

	Snapshot(ctx context.Context, clientID string) (Snapshot, error)
	Clear(ctx context.Context, clientID string, kind Kind) error
	ClearAll(ctx context.Context, clientID string) error
}

type shortlistService struct {
	repo   repository.ProductRepository
	store  storage.Store
	logger *zap.Logger
}

// NewShortlistService creates a new instance of ShortlistService
func NewShortlistService(repo repository.ProductRepository, store storage.Store, logger *zap.Logger) ShortlistService {
	return &shortlistService{repo: repo, store: store, logger: logger}
}

// ParseKind validates a shortlist name
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := storageKeys[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShortlist, s)
	}
	return k, nil
}

// ToggleFavorite adds the product to favorites, or removes it when present
func (s *shortlistService) ToggleFavorite(ctx context.Context, clientID string, productID int) (bool, error) {
	if _, err := s.repo.FindByID(productID); err != nil {
		return false, err
	}

	ids, err := s.load(ctx, clientID, KindFavorites)
	if err != nil {
		return false, err
	}

	added := !slices.Contains(ids, productID)
	if added {
		ids = append(ids, productID)
	} else {
		ids = slices.DeleteFunc(ids, func(id int) bool { return id == productID })
	}

	if err := s.save(ctx, clientID, KindFavorites, ids); err != nil {
		return false, err
	}

	s.logger.Debug("Favorite toggled",
		zap.String("client_id", clientID),
		zap.Int("product_id", productID),
		zap.Bool("added", added),
	)
	return added, nil
}

func (s *shortlistService) RemoveFavorite(ctx context.Context, clientID string, productID int) error {
	return s.remove(ctx, clientID, KindFavorites, productID)
}

func (s *shortlistService) ClearFavorites(ctx context.Context, clientID string) error {
	return s.Clear(ctx, clientID, KindFavorites)
}

// Favorites returns the favorite products in the order they were added
func (s *shortlistService) Favorites(ctx context.Context, clientID string) ([]domain.Product, error) {
	ids, err := s.load(ctx, clientID, KindFavorites)
	if err != nil {
		return nil, err
	}
	return s.resolve(ids), nil
}

// AddToComparison appends a product to the comparison list
func (s *shortlistService) AddToComparison(ctx context.Context, clientID string, productID int) error {
	if _, err := s.repo.FindByID(productID); err != nil {
		return err
	}

	stored, err := s.load(ctx, clientID, KindCompare)
	if err != nil {
		return err
	}
	// Ids that no longer resolve are dropped so they do not hold a slot.
	ids := slices.DeleteFunc(stored, func(id int) bool {
		_, err := s.repo.FindByID(id)
		return err != nil
	})

	if slices.Contains(ids, productID) {
		return ErrAlreadyInComparison
	}
	if len(ids) >= MaxComparison {
		return fmt.Errorf("%w: at most %d products", ErrComparisonFull, MaxComparison)
	}

	return s.save(ctx, clientID, KindCompare, append(ids, productID))
}

func (s *shortlistService) RemoveFromComparison(ctx context.Context, clientID string, productID int) error {
	return s.remove(ctx, clientID, KindCompare, productID)
}

func (s *shortlistService) ClearComparison(ctx context.Context, clientID string) error {
	return s.Clear(ctx, clientID, KindCompare)
}

// Comparison returns the compared products with their display values
func (s *shortlistService) Comparison(ctx context.Context, clientID string) ([]ComparedProduct, error) {
	ids, err := s.load(ctx, clientID, KindCompare)
	if err != nil {
		return nil, err
	}

	products := s.resolve(ids)
	out := make([]ComparedProduct, len(products))
	for i, p := range products {
		out[i] = ComparedProduct{
			Product:       p,
			CategoryLabel: catalog.CategoryLabel(p.Category),
			ColorSummary:  catalog.JoinOrUnavailable(p.Colors),
			SizeSummary:   catalog.JoinOrUnavailable(p.Sizes),
		}
	}
	return out, nil
}

// CompareTable lays the comparison out as attribute rows
func (s *shortlistService) CompareTable(ctx context.Context, clientID string) (CompareTable, error) {
	products, err := s.Comparison(ctx, clientID)
	if err != nil {
		return CompareTable{}, err
	}
	if len(products) < MinComparison {
		return CompareTable{}, fmt.Errorf("%w: need at least %d, have %d", ErrNotEnoughToCompare, MinComparison, len(products))
	}

	rows := []CompareRow{
		{Property: "Categoría"},
		{Property: "Descripción"},
		{Property: "Colores"},
		{Property: "Tallas"},
	}
	for _, p := range products {
		description := p.Description
		if description == "" {
			description = catalog.JoinOrUnavailable(nil)
		}
		rows[0].Values = append(rows[0].Values, p.CategoryLabel)
		rows[1].Values = append(rows[1].Values, description)
		rows[2].Values = append(rows[2].Values, p.ColorSummary)
		rows[3].Values = append(rows[3].Values, p.SizeSummary)
	}

	return CompareTable{Products: products, Rows: rows}, nil
}

// Snapshot returns both lists of a client
func (s *shortlistService) Snapshot(ctx context.Context, clientID string) (Snapshot, error) {
	favorites, err := s.Favorites(ctx, clientID)
	if err != nil {
		return Snapshot{}, err
	}
	compare, err := s.Comparison(ctx, clientID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Favorites: favorites, Compare: compare}, nil
}

// Clear empties one shortlist
func (s *shortlistService) Clear(ctx context.Context, clientID string, kind Kind) error {
	key, err := storageKey(clientID, kind)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", kind, err)
	}
	return nil
}

// ClearAll empties every shortlist of the client
func (s *shortlistService) ClearAll(ctx context.Context, clientID string) error {
	for _, kind := range []Kind{KindFavorites, KindCompare} {
		if err := s.Clear(ctx, clientID, kind); err != nil {
			return err
		}
	}
	return nil
}

func (s *shortlistService) remove(ctx context.Context, clientID string, kind Kind, productID int) error {
	ids, err := s.load(ctx, clientID, kind)
	if err != nil {
		return err
	}
	if !slices.Contains(ids, productID) {
		return nil
	}
	return s.save(ctx, clientID, kind, slices.DeleteFunc(ids, func(id int) bool { return id == productID }))
}

// resolve maps stored ids to products, skipping ids no longer in the catalog.
func (s *shortlistService) resolve(ids []int) []domain.Product {
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.FindByID(id)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products
}

// load reads a list. A corrupt value is dropped and treated as empty.
func (s *shortlistService) load(ctx context.Context, clientID string, kind Kind) ([]int, error) {
	key, err := storageKey(clientID, kind)
	if err != nil {
		return nil, err
	}

	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", kind, err)
	}
	if !ok {
		return []int{}, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("Discarding corrupt shortlist",
			zap.String("key", key),
			zap.Error(err),
		)
		if err := s.store.Remove(ctx, key); err != nil {
			s.logger.Warn("Failed to remove corrupt shortlist", zap.String("key", key), zap.Error(err))
		}
		return []int{}, nil
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

func (s *shortlistService) save(ctx context.Context, clientID string, kind Kind, ids []int) error {
	key, err := storageKey(clientID, kind)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	if err := s.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

func storageKey(clientID string, kind Kind) (string, error) {
	if clientID == "" {
		return "", ErrInvalidClientID
	}
	name, ok := storageKeys[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShortlist, kind)
	}
	return clientID + ":" + name, nil
}
