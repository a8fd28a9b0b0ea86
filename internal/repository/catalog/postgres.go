package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"minishop-storefront/internal/domain"
)

// PostgresRepo is the primary catalog source. Reads serve the storefront;
// Upsert exists for the seed and importer tooling only, the core never
// mutates the catalog.
type PostgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns the primary catalog source backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *PostgresRepo {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &PostgresRepo{pool: pool, logger: logger}
}

const productColumns = `id, name_en, name_ar, description_en, description_ar, category, price_cents, COALESCE(original_price_cents, 0), image, in_stock`

func (r *PostgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY position
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("catalog repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("catalog repo: list count=%d", len(result))
	return result, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("catalog repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("catalog repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or updates one product at the given catalog position.
func (r *PostgresRepo) Upsert(ctx context.Context, p domain.Product, position int) error {
	const q = `
INSERT INTO products (id, name_en, name_ar, description_en, description_ar, category, price_cents, original_price_cents, image, in_stock, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8::bigint, 0), $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    name_en = EXCLUDED.name_en,
    name_ar = EXCLUDED.name_ar,
    description_en = EXCLUDED.description_en,
    description_ar = EXCLUDED.description_ar,
    category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents,
    original_price_cents = EXCLUDED.original_price_cents,
    image = EXCLUDED.image,
    in_stock = EXCLUDED.in_stock,
    position = EXCLUDED.position
`
	_, err := r.pool.Exec(ctx, q,
		p.ID,
		p.NameEN,
		p.NameAR,
		p.DescriptionEN,
		p.DescriptionAR,
		string(p.Category),
		p.PriceCents,
		p.OriginalPriceCents,
		p.Image,
		p.InStock,
		position,
	)
	if err != nil {
		r.logger.Printf("catalog repo: upsert id=%s error=%v", p.ID, err)
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var category string
	err := row.Scan(
		&p.ID,
		&p.NameEN,
		&p.NameAR,
		&p.DescriptionEN,
		&p.DescriptionAR,
		&category,
		&p.PriceCents,
		&p.OriginalPriceCents,
		&p.Image,
		&p.InStock,
	)
	p.Category = domain.Category(category)
	return p, err
}
