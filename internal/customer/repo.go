package customer

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("customer not found")
	ErrAlreadyExist = errors.New("customer already exists")
)

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Orders(ctx context.Context, id int64) ([]OrderSummary, error)
	Stats(ctx context.Context, id int64) (*Stats, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context) ([]Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT customer_id, name, email, phone, address, created_at
		FROM customers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Customer
	err := r.db.QueryRow(ctx, `
		SELECT customer_id, name, email, phone, address, created_at
		FROM customers WHERE customer_id=$1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) Create(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone, address, created_at)
		VALUES ($1,$2,$3,$4,NOW())
		RETURNING customer_id, created_at
	`, c.Name, c.Email, c.Phone, c.Address).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation (UNIQUE on email)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExist
		}
		return err
	}
	return nil
}

func (r *PGRepo) Orders(ctx context.Context, id int64) ([]OrderSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT order_id, order_date, total_amount::text, status
		FROM orders
		WHERE customer_id=$1
		ORDER BY order_date DESC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderSummary
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.OrderID, &o.OrderDate, &o.TotalAmount, &o.Status); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) Stats(ctx context.Context, id int64) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Stats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount),0)::text
		FROM orders WHERE customer_id=$1
	`, id).Scan(&s.TotalOrders, &s.TotalSpent)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
