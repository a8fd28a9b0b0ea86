package catalog

import (
	"context"

	"minishop-storefront/internal/domain"
)

// Repository is a read-only product source. The catalog is never mutated by
// the storefront core.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
