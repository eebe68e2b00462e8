package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "goggles_shop/internal/domain/order"
)

// CheckoutStore commits the checkout transition in a single transaction:
// order + lines inserted, stock decremented, cart cleared. Product rows are
// locked with FOR UPDATE so concurrent checkouts touching the same product
// serialize their decrements instead of losing updates.
type CheckoutStore struct {
	pool *pgxpool.Pool
}

func NewCheckoutStore(pool *pgxpool.Pool) *CheckoutStore {
	return &CheckoutStore{pool: pool}
}

func (s *CheckoutStore) PlaceOrder(ctx context.Context, sessionID string, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin checkout tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := s.decrementStock(ctx, tx, o); err != nil {
		return err
	}

	const orderInsert = `
		INSERT INTO orders (id, customer_name, email, shipping_address, placed_at, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, orderInsert,
		o.ID,
		o.CustomerName,
		o.Email,
		o.ShippingAddress,
		o.PlacedAt,
		o.TotalAmount,
		o.Status,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	const lineInsert = `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range o.Lines {
		_, err = tx.Exec(ctx, lineInsert,
			line.ID,
			o.ID,
			line.ProductID,
			line.Quantity,
			line.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	const clearCart = `DELETE FROM cart_items WHERE session_id = $1;`
	if _, err := tx.Exec(ctx, clearCart, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit checkout tx: %w", err)
	}
	return nil
}

// decrementStock locks every touched product row and applies the decrements.
// Rows are locked in product-id order so two overlapping checkouts cannot
// deadlock each other.
func (s *CheckoutStore) decrementStock(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	lines := make([]domain.Line, len(o.Lines))
	copy(lines, o.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	const lockQuery = `
		SELECT name, stock_quantity
		FROM products
		WHERE id = $1
		FOR UPDATE;
	`
	const updateQuery = `
		UPDATE products
		SET stock_quantity = stock_quantity - $1
		WHERE id = $2;
	`
	for _, line := range lines {
		var name string
		var stock int
		if err := tx.QueryRow(ctx, lockQuery, line.ProductID).Scan(&name, &stock); err != nil {
			return fmt.Errorf("lock product %s: %w", line.ProductID, err)
		}
		if stock < line.Quantity {
			return &domain.InsufficientStockError{
				ProductID:   line.ProductID,
				ProductName: name,
				Requested:   line.Quantity,
				Available:   stock,
			}
		}
		if _, err := tx.Exec(ctx, updateQuery, line.Quantity, line.ProductID); err != nil {
			return fmt.Errorf("decrement stock for %s: %w", line.ProductID, err)
		}
	}
	return nil
}
