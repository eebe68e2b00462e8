package repository

import (
	"context"

	"goggles_shop/internal/domain/catalog"
)

// ProductRepository reads the catalog and is also used by the seeder.
// Read methods return (nil, nil) for a missing product; services translate
// that into their not-found error.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
	List(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error)
	Categories(ctx context.Context) ([]string, error)
	LensColors(ctx context.Context) ([]string, error)
	Save(ctx context.Context, product *catalog.Product) error
	Count(ctx context.Context) (int, error)
}
