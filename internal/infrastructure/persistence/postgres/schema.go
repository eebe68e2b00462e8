package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the four storefront tables when they do not exist yet.
// Called once at startup instead of lazily from the repositories.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(18,2) NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			lens_color TEXT NOT NULL DEFAULT '',
			frame_style TEXT NOT NULL DEFAULT '',
			stock_quantity INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cart_items (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			product_id TEXT NOT NULL REFERENCES products(id),
			quantity INT NOT NULL,
			UNIQUE (session_id, product_id)
		);
		CREATE INDEX IF NOT EXISTS idx_cart_items_session ON cart_items(session_id);

		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			shipping_address TEXT NOT NULL,
			placed_at TIMESTAMPTZ NOT NULL,
			total_amount NUMERIC(18,2) NOT NULL,
			status TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			product_id TEXT NOT NULL REFERENCES products(id),
			quantity INT NOT NULL,
			unit_price NUMERIC(18,2) NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);
	`
	_, err := pool.Exec(ctx, stmt)
	return err
}
