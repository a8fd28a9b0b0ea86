package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	catalogrepo "minishop-storefront/internal/repository/catalog"
)

// Apply loads the bundled catalog collection into Postgres so the primary
// source serves the same products the fallback would. Idempotent via upsert.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	static, err := catalogrepo.NewStatic()
	if err != nil {
		return fmt.Errorf("load bundled catalog: %w", err)
	}
	products, err := static.List(ctx)
	if err != nil {
		return fmt.Errorf("list bundled catalog: %w", err)
	}

	repo := catalogrepo.NewPostgres(pool, nil)
	for i, p := range products {
		if err := repo.Upsert(ctx, p, i+1); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}
