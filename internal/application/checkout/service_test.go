package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cartdomain "goggles_shop/internal/domain/cart"
	catalogdomain "goggles_shop/internal/domain/catalog"
	domain "goggles_shop/internal/domain/order"
	"goggles_shop/pkg/logger"
)

// MockCartRepository mocks repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindLine(ctx context.Context, sessionID, lineID string) (*cartdomain.Line, error) {
	args := m.Called(ctx, sessionID, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.Line), args.Error(1)
}

func (m *MockCartRepository) MergeLine(ctx context.Context, line *cartdomain.Line) (*cartdomain.Line, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.Line), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, line *cartdomain.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, sessionID, lineID string) error {
	args := m.Called(ctx, sessionID, lineID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockCartRepository) ListItems(ctx context.Context, sessionID string) ([]cartdomain.Item, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cartdomain.Item), args.Error(1)
}

func (m *MockCartRepository) TotalQuantity(ctx context.Context, sessionID string) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockCheckoutStore mocks repository.CheckoutStore.
type MockCheckoutStore struct {
	mock.Mock
}

func (m *MockCheckoutStore) PlaceOrder(ctx context.Context, sessionID string, o *domain.Order) error {
	args := m.Called(ctx, sessionID, o)
	return args.Error(0)
}

// MockPublisher mocks the Publisher interface.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderConfirmed(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func validDetails() domain.CustomerDetails {
	return domain.CustomerDetails{
		CustomerName:    "Jamie Winter",
		Email:           "jamie@example.com",
		ShippingAddress: "12 Piste Lane, Whistler",
	}
}

func testItems() []cartdomain.Item {
	return []cartdomain.Item{
		{
			Line: cartdomain.Line{ID: "line-1", SessionID: "session-1", ProductID: "p1", Quantity: 2},
			Product: catalogdomain.Product{
				ID:            "p1",
				Name:          "Snowview Orange",
				Price:         decimal.RequireFromString("59.99"),
				StockQuantity: 30,
			},
		},
	}
}

func newTestService(carts *MockCartRepository, orders *MockOrderRepository, store *MockCheckoutStore, publisher Publisher) *Service {
	return NewService(carts, orders, store, publisher, logger.NewNop())
}

func TestService_PrepareCheckout(t *testing.T) {
	carts := new(MockCartRepository)
	service := newTestService(carts, new(MockOrderRepository), new(MockCheckoutStore), nil)

	ctx := context.Background()
	carts.On("ListItems", ctx, "session-1").Return(testItems(), nil)

	summary, err := service.PrepareCheckout(ctx, "session-1")

	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.True(t, summary.Total().Equal(decimal.RequireFromString("119.98")))
}

func TestService_PrepareCheckout_EmptyCart(t *testing.T) {
	carts := new(MockCartRepository)
	service := newTestService(carts, new(MockOrderRepository), new(MockCheckoutStore), nil)

	ctx := context.Background()
	carts.On("ListItems", ctx, "session-1").Return([]cartdomain.Item{}, nil)

	summary, err := service.PrepareCheckout(ctx, "session-1")

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, summary)
}

func TestService_PrepareCheckout_NoSession(t *testing.T) {
	carts := new(MockCartRepository)
	service := newTestService(carts, new(MockOrderRepository), new(MockCheckoutStore), nil)

	_, err := service.PrepareCheckout(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	carts.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_Success(t *testing.T) {
	carts := new(MockCartRepository)
	store := new(MockCheckoutStore)
	publisher := new(MockPublisher)
	service := newTestService(carts, new(MockOrderRepository), store, publisher)

	ctx := context.Background()
	carts.On("ListItems", ctx, "session-1").Return(testItems(), nil)
	store.On("PlaceOrder", ctx, "session-1", mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.StatusConfirmed &&
			o.TotalAmount.Equal(decimal.RequireFromString("119.98")) &&
			len(o.Lines) == 1 &&
			o.Lines[0].Quantity == 2 &&
			o.Lines[0].UnitPrice.Equal(decimal.RequireFromString("59.99"))
	})).Return(nil)
	publisher.On("PublishOrderConfirmed", ctx, mock.Anything).Return(nil)

	placement, err := service.PlaceOrder(ctx, "session-1", validDetails())

	require.NoError(t, err)
	require.NotNil(t, placement.Order)
	assert.NotEmpty(t, placement.Order.ID)
	assert.Equal(t, "Jamie Winter", placement.Order.CustomerName)
	store.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestService_PlaceOrder_EmptyCart(t *testing.T) {
	carts := new(MockCartRepository)
	store := new(MockCheckoutStore)
	service := newTestService(carts, new(MockOrderRepository), store, nil)

	ctx := context.Background()
	carts.On("ListItems", ctx, "session-1").Return([]cartdomain.Item{}, nil)

	placement, err := service.PlaceOrder(ctx, "session-1", validDetails())

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, placement)
	// No order may be created from an empty cart.
	store.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_ValidationFailure(t *testing.T) {
	carts := new(MockCartRepository)
	store := new(MockCheckoutStore)
	service := newTestService(carts, new(MockOrderRepository), store, nil)

	ctx := context.Background()
	carts.On("ListItems", ctx, "session-1").Return(testItems(), nil)

	details := domain.CustomerDetails{
		CustomerName:    "",
		Email:           "nope",
		ShippingAddress: "",
	}

	placement, err := service.PlaceOrder(ctx, "session-1", details)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)

	// The cart comes back with the failure so the form can re-render.
	require.NotNil(t, placement)
	require.NotNil(t, placement.Cart)
	assert.Len(t, placement.Cart.Items, 1)
	assert.Nil(t, placement.Order)
	store.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_InsufficientStock(t *testing.T) {
	carts := new(MockCartRepository)
	store := new(MockCheckoutStore)
	publisher := new(MockPublisher)
	service := newTestService(carts, new(MockOrderRepository), store, publisher)

	ctx := context.Background()
	carts.On("ListItems", ctx, "session-1").Return(testItems(), nil)

	stockErr := &domain.InsufficientStockError{
		ProductID: "p1", ProductName: "Snowview Orange", Requested: 2, Available: 1,
	}
	store.On("PlaceOrder", ctx, "session-1", mock.Anything).Return(stockErr)

	placement, err := service.PlaceOrder(ctx, "session-1", validDetails())

	var serr *domain.InsufficientStockError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 1, serr.Available)
	assert.Nil(t, placement)
	publisher.AssertNotCalled(t, "PublishOrderConfirmed", mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_PublishFailureDoesNotFailCheckout(t *testing.T) {
	carts := new(MockCartRepository)
	store := new(MockCheckoutStore)
	publisher := new(MockPublisher)
	service := newTestService(carts, new(MockOrderRepository), store, publisher)

	ctx := context.Background()
	carts.On("ListItems", ctx, "session-1").Return(testItems(), nil)
	store.On("PlaceOrder", ctx, "session-1", mock.Anything).Return(nil)
	publisher.On("PublishOrderConfirmed", ctx, mock.Anything).Return(errors.New("broker down"))

	placement, err := service.PlaceOrder(ctx, "session-1", validDetails())

	require.NoError(t, err)
	require.NotNil(t, placement.Order)
	publisher.AssertExpectations(t)
}

func TestService_GetOrder(t *testing.T) {
	orders := new(MockOrderRepository)
	service := newTestService(new(MockCartRepository), orders, new(MockCheckoutStore), nil)

	ctx := context.Background()
	want := &domain.Order{ID: "order-1", CustomerName: "Jamie Winter", Status: domain.StatusConfirmed}
	orders.On("FindByID", ctx, "order-1").Return(want, nil)

	got, err := service.GetOrder(ctx, "order-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_GetOrder_NotFound(t *testing.T) {
	orders := new(MockOrderRepository)
	service := newTestService(new(MockCartRepository), orders, new(MockCheckoutStore), nil)

	ctx := context.Background()
	orders.On("FindByID", ctx, "ghost").Return(nil, nil)

	got, err := service.GetOrder(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}
