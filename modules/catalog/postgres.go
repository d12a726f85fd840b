package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcardin/value-classes/pkg/pg"
)

// PostgresRepository persists products in the products table (see the
// migrations directory for the schema). Barcode and Description implement
// sql.Scanner and driver.Valuer, so they pass through pgx as plain text and
// every barcode read back from the database is re-validated on scan.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository wraps an existing connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindByBarcode implements Repository.
func (r *PostgresRepository) FindByBarcode(ctx context.Context, code Barcode) (Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, barcode, description, created_at FROM products WHERE barcode = $1`,
		code)

	var p Product
	if err := row.Scan(&p.ID, &p.Barcode, &p.Description, &p.CreatedAt); err != nil {
		if pg.IsNotFoundError(err) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, err
	}
	return p, nil
}

// FindByDescription implements Repository.
func (r *PostgresRepository) FindByDescription(ctx context.Context, desc Description) ([]Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, barcode, description, created_at FROM products WHERE description = $1 ORDER BY barcode`,
		desc)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		matches = append(matches, p)
	}
	return matches, rows.Err()
}

// Save implements Repository. The conditional upsert only touches the
// conflicting row when it belongs to the same product, so a barcode held by
// a different product surfaces as ErrDuplicateBarcode instead of being
// silently overwritten.
func (r *PostgresRepository) Save(ctx context.Context, p Product) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO products (id, barcode, description, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (barcode) DO UPDATE
		 SET description = EXCLUDED.description
		 WHERE products.id = EXCLUDED.id`,
		p.ID, p.Barcode, p.Description, p.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrDuplicateBarcode
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateBarcode
	}
	return nil
}

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*MemoryRepository)(nil)
)
