package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"minishop-storefront/internal/domain"
)

//go:embed products.json
var staticFS embed.FS

type staticRepo struct {
	products []domain.Product
	byID     map[string]int
}

// NewStatic returns the bundled fallback collection shipped inside the
// binary. It is used whenever the primary catalog source is unavailable.
func NewStatic() (Repository, error) {
	raw, err := staticFS.ReadFile("products.json")
	if err != nil {
		return nil, fmt.Errorf("read bundled catalog: %w", err)
	}
	return newStaticFromJSON(raw)
}

func newStaticFromJSON(raw []byte) (Repository, error) {
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse bundled catalog: %w", err)
	}
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("bundled catalog: %w", err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("bundled catalog: duplicate product id %s", p.ID)
		}
		byID[p.ID] = i
	}
	return &staticRepo{products: products, byID: byID}, nil
}

func (r *staticRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *staticRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.products[i]
	return &p, nil
}
