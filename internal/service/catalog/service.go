package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"minishop-storefront/internal/domain"
	catalogrepo "minishop-storefront/internal/repository/catalog"
)

// Service reads the catalog through the primary source and falls back to the
// bundled collection when the primary is unavailable. Source failures are
// recovered here and never surfaced to callers.
type Service struct {
	primary  catalogrepo.Repository
	fallback catalogrepo.Repository
	logger   *log.Logger
}

func New(primary, fallback catalogrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{primary: primary, fallback: fallback, logger: logger}
}

// List returns the full product collection in catalog order.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	if s.primary == nil {
		return s.fallback.List(ctx)
	}
	products, err := s.primary.List(ctx)
	if err != nil {
		s.logger.Printf("catalog: primary source failed, using bundled collection: %v", err)
		return s.fallback.List(ctx)
	}
	return products, nil
}

// Get returns one product by id. A not-found answer from the primary is
// authoritative; the fallback only covers source unavailability.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if s.primary == nil {
		return s.fallback.GetByID(ctx, id)
	}
	p, err := s.primary.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("catalog: primary source failed, using bundled collection: %v", err)
		return s.fallback.GetByID(ctx, id)
	}
	return p, err
}

// Query applies category filter then price sort over the catalog. The view
// mode is threaded through untouched for navigation links.
func (s *Service) Query(ctx context.Context, params QueryParams) (QueryResult, error) {
	products, err := s.List(ctx)
	if err != nil {
		return QueryResult{}, err
	}
	filtered, err := FilterByCategory(products, params.Category)
	if err != nil {
		return QueryResult{}, err
	}
	SortByPrice(filtered, params.Sort)
	return QueryResult{
		Products: filtered,
		Category: params.Category,
		Sort:     params.Sort,
		View:     params.View,
	}, nil
}
