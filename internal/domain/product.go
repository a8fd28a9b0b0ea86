package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the closed set of storefront product categories.
type Category string

const (
	CategoryApparel     Category = "apparel"
	CategoryAccessories Category = "accessories"
	CategoryElectronics Category = "electronics"
	CategoryFootwear    Category = "footwear"
	CategoryHome        Category = "home"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryApparel,
		CategoryAccessories,
		CategoryElectronics,
		CategoryFootwear,
		CategoryHome,
	}
}

// ParseCategory resolves a slug case-insensitively. "all" is a filter
// wildcard handled by the query layer, not a category, and is rejected here.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("category %q: %w", s, ErrNotFound)
}

// Product is one immutable catalog record. Display fields carry both locales
// so the frontend never needs a second lookup.
type Product struct {
	ID                 string   `json:"id"`
	NameEN             string   `json:"name_en"`
	NameAR             string   `json:"name_ar"`
	DescriptionEN      string   `json:"description_en"`
	DescriptionAR      string   `json:"description_ar"`
	Category           Category `json:"category"`
	PriceCents         int64    `json:"priceCents"`
	OriginalPriceCents int64    `json:"originalPriceCents,omitempty"`
	Image              string   `json:"image"`
	InStock            bool     `json:"inStock"`
}

// Discounted reports whether the product carries a crossed-out original price.
func (p Product) Discounted() bool {
	return p.OriginalPriceCents > 0
}

// Validate checks the catalog invariants. An original price of zero means no
// discount; when set it must be strictly greater than the price.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("product id required")
	}
	if p.NameEN == "" || p.NameAR == "" {
		return fmt.Errorf("product %s: both name locales required", p.ID)
	}
	if p.DescriptionEN == "" || p.DescriptionAR == "" {
		return fmt.Errorf("product %s: both description locales required", p.ID)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("product %s: negative price", p.ID)
	}
	if p.OriginalPriceCents != 0 && p.OriginalPriceCents <= p.PriceCents {
		return fmt.Errorf("product %s: original price must exceed price", p.ID)
	}
	return nil
}
