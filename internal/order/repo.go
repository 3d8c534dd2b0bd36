package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("order not found")
	ErrProductUnavailable = errors.New("product not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

type Repository interface {
	Place(ctx context.Context, customerID int64, lines []Line) (int64, error)
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int64) (*Detail, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Place creates the order header and all line items in a single
// transaction. The product row is locked before the stock check, so two
// orders racing on the same product serialize on the row lock and the
// loser re-reads stock after the winner's decrement. Any failure rolls
// the whole order back.
func (r *PGRepo) Place(ctx context.Context, customerID int64, lines []Line) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var orderID int64
	if err := tx.QueryRow(ctx, `
    INSERT INTO orders (customer_id, order_date, total_amount, status)
    VALUES ($1, NOW(), 0, $2)
    RETURNING order_id
  `, customerID, StatusPending).Scan(&orderID); err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, ln := range lines {
		var priceText string
		var stock int
		err := tx.QueryRow(ctx, `
      SELECT price::text, stock FROM products
      WHERE product_id=$1
      FOR UPDATE
    `, ln.ProductID).Scan(&priceText, &stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, fmt.Errorf("%w: product %d", ErrProductUnavailable, ln.ProductID)
			}
			return 0, err
		}
		if stock < ln.Quantity {
			return 0, fmt.Errorf("%w: product %d has %d, requested %d",
				ErrInsufficientStock, ln.ProductID, stock, ln.Quantity)
		}

		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return 0, err
		}
		subtotal := price.Mul(decimal.NewFromInt(int64(ln.Quantity)))

		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (order_id, product_id, quantity, subtotal)
      VALUES ($1,$2,$3,$4)
    `, orderID, ln.ProductID, ln.Quantity, subtotal.String()); err != nil {
			return 0, err
		}

		// Guarded decrement; the row lock above already serialized us,
		// the stock condition backs the CHECK constraint.
		tag, err := tx.Exec(ctx, `
      UPDATE products SET stock = stock - $1
      WHERE product_id = $2 AND stock >= $1
    `, ln.Quantity, ln.ProductID)
		if err != nil {
			return 0, err
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("%w: product %d", ErrInsufficientStock, ln.ProductID)
		}

		total = total.Add(subtotal)
	}

	// Finalize the total inside the same transaction so committed state
	// never shows a zero placeholder.
	if _, err := tx.Exec(ctx, `
    UPDATE orders SET total_amount = $2 WHERE order_id = $1
  `, orderID, total.String()); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT o.order_id, o.customer_id, c.name, o.order_date, o.total_amount::text, o.status
    FROM orders o
    JOIN customers c ON o.customer_id = c.customer_id
    ORDER BY o.order_date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.OrderDate, &o.TotalAmount, &o.Status); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Detail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d Detail
	err := r.db.QueryRow(ctx, `
    SELECT o.order_id, o.customer_id, c.name, c.email, c.phone, c.address,
           o.order_date, o.total_amount::text, o.status
    FROM orders o
    JOIN customers c ON o.customer_id = c.customer_id
    WHERE o.order_id=$1
  `, id).Scan(&d.ID, &d.CustomerID, &d.CustomerName, &d.Email, &d.Phone, &d.Address,
		&d.OrderDate, &d.TotalAmount, &d.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
    SELECT oi.item_id, oi.order_id, oi.product_id, p.product_name, p.price::text,
           oi.quantity, oi.subtotal::text
    FROM order_items oi
    JOIN products p ON oi.product_id = p.product_id
    WHERE oi.order_id=$1
  `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Price,
			&it.Quantity, &it.Subtotal); err != nil {
			return nil, err
		}
		d.Items = append(d.Items, it)
	}
	return &d, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders SET status = $2 WHERE order_id = $1
  `, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
