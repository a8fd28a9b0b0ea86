package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"minishop-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product, position int) error
}

// JSONImporter reads a storefront catalog export (a JSON array of product
// records) and inserts/updates products, preserving array order as catalog
// position.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

// Run parses the export and upserts every record. A record that fails
// validation or repeats an id aborts the import; already-imported rows stay
// upserted.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	raw, err := io.ReadAll(i.reader)
	if err != nil {
		return 0, fmt.Errorf("read export: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return 0, fmt.Errorf("parse export: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	imported := 0
	for idx, p := range products {
		if err := p.Validate(); err != nil {
			return imported, fmt.Errorf("record %d: %w", idx, err)
		}
		if _, dup := seen[p.ID]; dup {
			return imported, fmt.Errorf("record %d: duplicate product id %s", idx, p.ID)
		}
		seen[p.ID] = struct{}{}
		if err := i.productRepo.Upsert(ctx, p, idx+1); err != nil {
			return imported, fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
		imported++
	}
	return imported, nil
}
