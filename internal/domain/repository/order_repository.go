package repository

import (
	"context"

	"goggles_shop/internal/domain/order"
)

// OrderRepository reads persisted orders with their lines. FindByID returns
// (nil, nil) for an unknown id.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*order.Order, error)
}

// CheckoutStore commits the checkout state transition as one atomic unit:
// persist the order with its lines, decrement stock for every line, and delete
// the session's cart lines. Implementations must serialize concurrent stock
// decrements and return *order.InsufficientStockError when a line's quantity
// exceeds the remaining stock.
type CheckoutStore interface {
	PlaceOrder(ctx context.Context, sessionID string, o *order.Order) error
}
