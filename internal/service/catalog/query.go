package catalog

import (
	"fmt"
	"sort"
	"strings"

	"minishop-storefront/internal/domain"
)

// SortOrder selects the price ordering of a product listing.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps a query value to a sort order. Unknown values mean no
// sort, preserving catalog order.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc
	case "desc":
		return SortDesc
	default:
		return SortNone
	}
}

// ViewMode is a presentation hint only. It never affects filtering or
// ordering and is threaded through so navigation links keep the current mode.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode defaults to grid for anything but an explicit list.
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(strings.TrimSpace(s), "list") {
		return ViewList
	}
	return ViewGrid
}

// CategoryAll passes every product through the filter unchanged.
const CategoryAll = "all"

// QueryParams describe one catalog listing request.
type QueryParams struct {
	Category string
	Sort     SortOrder
	View     ViewMode
}

// QueryResult carries the filtered, sorted listing plus the parameters it was
// produced with.
type QueryResult struct {
	Products []domain.Product
	Category string
	Sort     SortOrder
	View     ViewMode
}

// FilterByCategory retains products whose category equals the slug
// case-insensitively. "all" (or empty) returns the whole collection in
// order. A named category with zero matches is a distinct not-found outcome
// so the caller can route to a dedicated not-found experience.
func FilterByCategory(products []domain.Product, category string) ([]domain.Product, error) {
	slug := strings.TrimSpace(category)
	if slug == "" || strings.EqualFold(slug, CategoryAll) {
		out := make([]domain.Product, len(products))
		copy(out, products)
		return out, nil
	}
	var out []domain.Product
	for _, p := range products {
		if strings.EqualFold(string(p.Category), slug) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("category %q: %w", slug, domain.ErrNotFound)
	}
	return out, nil
}

// SortByPrice orders products by price in place. The sort is stable so equal
// prices keep their relative catalog order; SortNone leaves the slice alone.
func SortByPrice(products []domain.Product, order SortOrder) {
	switch order {
	case SortAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents < products[j].PriceCents
		})
	case SortDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceCents > products[j].PriceCents
		})
	}
}
