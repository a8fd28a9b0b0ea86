package catalog

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"minishop-storefront/internal/domain"
	"minishop-storefront/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func TestPostgres_ListAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE products`); err != nil {
		t.Fatalf("truncate products: %v", err)
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, name_en, name_ar, description_en, description_ar, category, price_cents, original_price_cents, image, in_stock, position)
		VALUES ('p1', 'Prod 1', 'منتج ١', 'desc', 'وصف', 'apparel', 1000, NULL, '/p1.jpg', TRUE, 1),
		       ('p2', 'Prod 2', 'منتج ٢', 'desc', 'وصف', 'home', 2500, 3000, '/p2.jpg', FALSE, 2)
	`)
	if err != nil {
		t.Fatalf("insert products: %v", err)
	}

	repo := NewPostgres(pool, nil)

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "p1" || list[1].ID != "p2" {
		t.Fatalf("unexpected list %+v", list)
	}

	got, err := repo.GetByID(ctx, "p2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OriginalPriceCents != 3000 || got.InStock {
		t.Fatalf("unexpected product %+v", got)
	}

	_, err = repo.GetByID(ctx, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
