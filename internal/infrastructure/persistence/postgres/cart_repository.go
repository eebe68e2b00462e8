package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	cartdomain "goggles_shop/internal/domain/cart"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) FindLine(ctx context.Context, sessionID, lineID string) (*cartdomain.Line, error) {
	const query = `
		SELECT id, session_id, product_id, quantity
		FROM cart_items
		WHERE session_id = $1 AND id = $2;
	`
	return r.findOne(ctx, query, sessionID, lineID)
}

// MergeLine inserts the line or, when the session already carries the product,
// folds the quantity into the existing row. The merge happens inside the
// upsert so two racing adds of the same product cannot trip the
// (session_id, product_id) uniqueness constraint. Returns the row as stored.
func (r *CartRepository) MergeLine(ctx context.Context, line *cartdomain.Line) (*cartdomain.Line, error) {
	if line == nil {
		return nil, fmt.Errorf("cart line is nil")
	}

	const query = `
		INSERT INTO cart_items (id, session_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, product_id) DO UPDATE
		SET quantity = LEAST(cart_items.quantity + EXCLUDED.quantity, $5)
		RETURNING id, session_id, product_id, quantity;
	`
	var merged cartdomain.Line
	err := r.pool.QueryRow(ctx, query,
		line.ID,
		line.SessionID,
		line.ProductID,
		line.Quantity,
		cartdomain.MaxQuantity,
	).Scan(
		&merged.ID,
		&merged.SessionID,
		&merged.ProductID,
		&merged.Quantity,
	)
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func (r *CartRepository) Save(ctx context.Context, line *cartdomain.Line) error {
	if line == nil {
		return fmt.Errorf("cart line is nil")
	}

	const query = `
		INSERT INTO cart_items (id, session_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET quantity = EXCLUDED.quantity;
	`
	_, err := r.pool.Exec(ctx, query,
		line.ID,
		line.SessionID,
		line.ProductID,
		line.Quantity,
	)
	return err
}

func (r *CartRepository) Delete(ctx context.Context, sessionID, lineID string) error {
	const query = `DELETE FROM cart_items WHERE session_id = $1 AND id = $2;`
	_, err := r.pool.Exec(ctx, query, sessionID, lineID)
	return err
}

func (r *CartRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM cart_items WHERE session_id = $1;`
	_, err := r.pool.Exec(ctx, query, sessionID)
	return err
}

// ListItems joins the session's lines with their current product records.
// Ordering by line id keeps listings stable across requests.
func (r *CartRepository) ListItems(ctx context.Context, sessionID string) ([]cartdomain.Item, error) {
	const query = `
		SELECT c.id, c.session_id, c.product_id, c.quantity,
			p.id, p.name, p.description, p.price, p.image_url, p.category, p.lens_color, p.frame_style, p.stock_quantity, p.created_at
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.session_id = $1
		ORDER BY c.id;
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []cartdomain.Item
	for rows.Next() {
		var item cartdomain.Item
		err := rows.Scan(
			&item.Line.ID,
			&item.Line.SessionID,
			&item.Line.ProductID,
			&item.Line.Quantity,
			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Product.ImageURL,
			&item.Product.Category,
			&item.Product.LensColor,
			&item.Product.FrameStyle,
			&item.Product.StockQuantity,
			&item.Product.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartRepository) TotalQuantity(ctx context.Context, sessionID string) (int, error) {
	const query = `
		SELECT COALESCE(SUM(quantity), 0)
		FROM cart_items
		WHERE session_id = $1;
	`
	var total int
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(&total)
	return total, err
}

func (r *CartRepository) findOne(ctx context.Context, query string, args ...any) (*cartdomain.Line, error) {
	var line cartdomain.Line
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&line.ID,
		&line.SessionID,
		&line.ProductID,
		&line.Quantity,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}
