package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "goggles_shop/internal/domain/order"
)

// OrderRepository is read-only: orders are written exclusively by the
// CheckoutStore transaction, and line unit prices are never updated after
// creation.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const orderQuery = `
		SELECT id, customer_name, email, shipping_address, placed_at, total_amount, status
		FROM orders
		WHERE id = $1;
	`
	var o domain.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.Email,
		&o.ShippingAddress,
		&o.PlacedAt,
		&o.TotalAmount,
		&o.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const linesQuery = `
		SELECT i.id, i.product_id, p.name, i.quantity, i.unit_price
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id;
	`
	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.Line
		err := rows.Scan(
			&line.ID,
			&line.ProductID,
			&line.ProductName,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
