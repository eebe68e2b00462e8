package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "goggles_shop/internal/domain/catalog"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) LensColors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func product(name, price string, stock int) domain.Product {
	return domain.Product{
		ID:            "id-" + name,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
}

func TestService_ListProducts_ForwardsFilter(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewService(repo)
	ctx := context.Background()

	matching := []domain.Product{product("Alpine Basic", "54.99", 25)}
	wantFilter := domain.Filter{Category: "Budget", LensColor: "Clear"}

	repo.On("List", ctx, wantFilter).Return(matching, nil)
	repo.On("Categories", ctx).Return([]string{"Budget", "Mid-Range", "Premium"}, nil)
	repo.On("LensColors", ctx).Return([]string{"Clear", "Orange"}, nil)

	listing, err := service.ListProducts(ctx, "Budget", "Clear")

	require.NoError(t, err)
	assert.Equal(t, matching, listing.Products)
	assert.Equal(t, "Budget", listing.Category)
	assert.Equal(t, "Clear", listing.LensColor)
	assert.Equal(t, []string{"Budget", "Mid-Range", "Premium"}, listing.Categories)
	assert.Equal(t, []string{"Clear", "Orange"}, listing.LensColors)
	repo.AssertExpectations(t)
}

func TestService_GetProduct_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, "ghost").Return(nil, nil)

	p, err := service.GetProduct(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Nil(t, p)
}

func TestService_GetProduct_EmptyID(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewService(repo)

	p, err := service.GetProduct(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Nil(t, p)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_Featured_TopThreeByPriceDesc(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewService(repo)
	ctx := context.Background()

	// The repository already excludes out-of-stock rows for this filter.
	inStock := []domain.Product{
		product("Alpine Basic", "54.99", 25),
		product("Titanium Series", "299.99", 5),
		product("Elite Spherical", "229.99", 8),
		product("Pro-X Competition", "279.99", 6),
	}
	repo.On("List", ctx, domain.Filter{InStockOnly: true}).Return(inStock, nil)

	featured, err := service.Featured(ctx)

	require.NoError(t, err)
	require.Len(t, featured, FeaturedCount)
	assert.Equal(t, "Titanium Series", featured[0].Name)
	assert.Equal(t, "Pro-X Competition", featured[1].Name)
	assert.Equal(t, "Elite Spherical", featured[2].Name)
}

func TestService_Featured_StableOnPriceTies(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewService(repo)
	ctx := context.Background()

	inStock := []domain.Product{
		product("First", "99.99", 5),
		product("Second", "99.99", 5),
		product("Third", "99.99", 5),
		product("Fourth", "99.99", 5),
	}
	repo.On("List", ctx, domain.Filter{InStockOnly: true}).Return(inStock, nil)

	featured, err := service.Featured(ctx)

	require.NoError(t, err)
	require.Len(t, featured, FeaturedCount)
	// Ties keep their listing order.
	assert.Equal(t, "First", featured[0].Name)
	assert.Equal(t, "Second", featured[1].Name)
	assert.Equal(t, "Third", featured[2].Name)
}

func TestService_Featured_FewerThanThree(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewService(repo)
	ctx := context.Background()

	repo.On("List", ctx, domain.Filter{InStockOnly: true}).
		Return([]domain.Product{product("Alpine Basic", "54.99", 25)}, nil)

	featured, err := service.Featured(ctx)

	require.NoError(t, err)
	assert.Len(t, featured, 1)
}
