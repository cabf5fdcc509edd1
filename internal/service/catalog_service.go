package service

import (
	"context"
	"fmt"

	"catalogo-plus/internal/catalog"
	"catalogo-plus/internal/domain"
	"catalogo-plus/internal/repository"

	"go.uber.org/zap"
)

// CollectionPage is one rendered collection listing
type CollectionPage struct {
	catalog.Result
	Collection catalog.CollectionHeading `json:"collection"`
	Summary    string                    `json:"summary"`
}

// CatalogService defines the read side of the storefront
type CatalogService interface {
	Query(ctx context.Context, criteria domain.FilterCriteria) CollectionPage
	Product(ctx context.Context, id int) (domain.Product, error)
	Home(ctx context.Context) catalog.HomeHighlights
}

type catalogService struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(repo repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

// Query runs the catalog engine over the full product set
func (s *catalogService) Query(ctx context.Context, criteria domain.FilterCriteria) CollectionPage {
	result := catalog.Query(s.repo.All(), criteria)

	s.logger.Debug("Catalog query",
		zap.String("collection_type", string(criteria.CollectionType)),
		zap.String("collection_value", criteria.CollectionValue),
		zap.String("sort", string(criteria.SortMode)),
		zap.Int("page", result.PageWindow.CurrentPage),
		zap.Int("total_count", result.TotalCount),
	)

	return CollectionPage{
		Result:     result,
		Collection: catalog.DescribeCollection(criteria.CollectionType, criteria.CollectionValue),
		Summary:    catalog.ResultSummary(result.TotalCount),
	}
}

// Product returns a single product by id
func (s *catalogService) Product(ctx context.Context, id int) (domain.Product, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, err)
	}
	return p, nil
}

// Home returns the home page grid and top-seller carousel
func (s *catalogService) Home(ctx context.Context) catalog.HomeHighlights {
	return catalog.Highlights(s.repo.All())
}
