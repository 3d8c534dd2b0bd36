// Package stats serves the dashboard aggregates.
package stats

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Dashboard struct {
	TotalRevenue   string `json:"totalRevenue"`
	TotalOrders    int    `json:"totalOrders"`
	TotalCustomers int    `json:"totalCustomers"`
	TotalProducts  int    `json:"totalProducts"`
	LowStock       int    `json:"lowStock"`
}

type Repository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Dashboard(ctx context.Context) (*Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d Dashboard
	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM orders), 0)::text,
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE stock < 5)
	`).Scan(&d.TotalRevenue, &d.TotalOrders, &d.TotalCustomers, &d.TotalProducts, &d.LowStock)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
