package catalog

import (
	"context"
	"fmt"
	"sort"

	domain "goggles_shop/internal/domain/catalog"
	"goggles_shop/internal/domain/repository"
)

// FeaturedCount is how many in-stock products the home listing shows.
const FeaturedCount = 3

type Service struct {
	products repository.ProductRepository
}

func NewService(products repository.ProductRepository) *Service {
	return &Service{products: products}
}

// Listing is a filtered catalog page plus the distinct facet sets the
// presentation layer needs to build its filter controls.
type Listing struct {
	Products   []domain.Product
	Category   string
	LensColor  string
	Categories []string
	LensColors []string
}

// ListProducts returns products matching the optional category and lens-color
// filters (exact match, AND semantics).
func (s *Service) ListProducts(ctx context.Context, category, lensColor string) (*Listing, error) {
	filter := domain.Filter{Category: category, LensColor: lensColor}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	categories, err := s.products.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	lensColors, err := s.products.LensColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lens colors: %w", err)
	}

	return &Listing{
		Products:   products,
		Category:   category,
		LensColor:  lensColor,
		Categories: categories,
		LensColors: lensColors,
	}, nil
}

// GetProduct fetches one product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrProductNotFound
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// Featured returns up to FeaturedCount in-stock products ordered by price
// descending. The sort is stable, so price ties keep their listing order.
func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx, domain.Filter{InStockOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list in-stock products: %w", err)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price.GreaterThan(products[j].Price)
	})

	if len(products) > FeaturedCount {
		products = products[:FeaturedCount]
	}
	return products, nil
}
