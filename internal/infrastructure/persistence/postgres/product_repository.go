package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "goggles_shop/internal/domain/catalog"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, price, image_url, category, lens_color, frame_style, stock_quantity, created_at`

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1;
	`
	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.LensColor != "" {
		args = append(args, filter.LensColor)
		query += fmt.Sprintf(" AND lens_color = $%d", len(args))
	}
	if filter.InStockOnly {
		query += " AND stock_quantity > 0"
	}
	query += " ORDER BY created_at, id;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM products ORDER BY category;`)
}

func (r *ProductRepository) LensColors(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT lens_color FROM products ORDER BY lens_color;`)
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}

	const query = `
		INSERT INTO products (id, name, description, price, image_url, category, lens_color, frame_style, stock_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			image_url = EXCLUDED.image_url,
			category = EXCLUDED.category,
			lens_color = EXCLUDED.lens_color,
			frame_style = EXCLUDED.frame_style,
			stock_quantity = EXCLUDED.stock_quantity;
	`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.Category,
		product.LensColor,
		product.FrameStyle,
		product.StockQuantity,
		product.CreatedAt,
	)
	return err
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count)
	return count, err
}

func (r *ProductRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.Category,
		&p.LensColor,
		&p.FrameStyle,
		&p.StockQuantity,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
