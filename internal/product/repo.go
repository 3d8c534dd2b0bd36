// Package product provides the repository interface and PostgreSQL
// implementation for managing products.
package product

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	ListInStock(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product, stock *int) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListInStock(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT product_id, product_name, category, price::text, stock, description, created_at
		FROM products
		WHERE stock > 0
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT product_id, product_name, category, price::text, stock, description, created_at
		FROM products WHERE product_id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT product_id, product_name, category, price::text, stock, description, created_at
		FROM products
		WHERE category=$1 AND stock > 0
		ORDER BY created_at DESC
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PGRepo) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO products (product_name, category, price, stock, description, created_at)
		VALUES ($1,$2,$3,$4,$5,NOW())
		RETURNING product_id, created_at
	`, p.Name, p.Category, p.Price, p.Stock, p.Description).Scan(&p.ID, &p.CreatedAt)
}

// Update applies a partial update: empty strings and a nil stock keep
// the stored values.
func (r *PGRepo) Update(ctx context.Context, p *Product, stock *int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET product_name = COALESCE(NULLIF($2,''), product_name),
		    category     = COALESCE(NULLIF($3,''), category),
		    price        = COALESCE(NULLIF($4,'')::numeric, price),
		    stock        = COALESCE($5, stock),
		    description  = COALESCE(NULLIF($6,''), description)
		WHERE product_id = $1
	`, p.ID, p.Name, p.Category, p.Price, stock, p.Description)
	return err
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
