package repository

import (
	"context"

	"goggles_shop/internal/domain/cart"
)

// CartRepository persists cart lines keyed by (session id, line id).
// Find methods return (nil, nil) when no line matches. MergeLine carries the
// repeat-add rule: when the session already holds the product, quantities sum
// (capped at cart.MaxQuantity) atomically, so concurrent adds never collide.
type CartRepository interface {
	FindLine(ctx context.Context, sessionID, lineID string) (*cart.Line, error)
	MergeLine(ctx context.Context, line *cart.Line) (*cart.Line, error)
	Save(ctx context.Context, line *cart.Line) error
	Delete(ctx context.Context, sessionID, lineID string) error
	DeleteBySession(ctx context.Context, sessionID string) error
	ListItems(ctx context.Context, sessionID string) ([]cart.Item, error)
	TotalQuantity(ctx context.Context, sessionID string) (int, error)
}
