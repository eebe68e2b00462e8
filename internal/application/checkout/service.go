package checkout

import (
	"context"
	"errors"
	"fmt"

	cartdomain "goggles_shop/internal/domain/cart"
	domain "goggles_shop/internal/domain/order"
	"goggles_shop/internal/domain/repository"
	"goggles_shop/pkg/logger"
)

// Publisher emits an event for a committed order. Implementations must not be
// able to fail the checkout: publish errors are logged and swallowed.
type Publisher interface {
	PublishOrderConfirmed(ctx context.Context, o *domain.Order) error
}

// Service is the checkout engine: it turns a non-empty cart into a persisted
// order as one atomic unit of work.
type Service struct {
	carts     repository.CartRepository
	orders    repository.OrderRepository
	store     repository.CheckoutStore
	publisher Publisher
	log       logger.Logger
}

// NewService wires the engine. publisher may be nil when event publishing is
// disabled.
func NewService(
	carts repository.CartRepository,
	orders repository.OrderRepository,
	store repository.CheckoutStore,
	publisher Publisher,
	log logger.Logger,
) *Service {
	return &Service{
		carts:     carts,
		orders:    orders,
		store:     store,
		publisher: publisher,
		log:       log,
	}
}

// PrepareCheckout loads the session's cart for the checkout form. An empty
// cart returns order.ErrEmptyCart, which callers treat as a redirect back to
// the cart view rather than a failure.
func (s *Service) PrepareCheckout(ctx context.Context, sessionID string) (*cartdomain.Summary, error) {
	if sessionID == "" {
		return nil, domain.ErrEmptyCart
	}

	items, err := s.carts.ListItems(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	return &cartdomain.Summary{Items: items}, nil
}

// Placement is the outcome of PlaceOrder. On success Order is set. On a
// validation failure the error is a *order.ValidationError and Cart carries
// the current lines so the caller can re-render the checkout form.
type Placement struct {
	Order *domain.Order
	Cart  *cartdomain.Summary
}

// PlaceOrder re-fetches the cart, validates the customer details, snapshots
// the cart into an order and commits the whole transition atomically: order
// and lines persisted, stock decremented, cart cleared. A checkout that would
// drive stock below zero is rejected with *order.InsufficientStockError.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, details domain.CustomerDetails) (*Placement, error) {
	// Re-fetch rather than trust a previously rendered snapshot: the cart may
	// have been cleared by a racing submission or an expired session.
	if sessionID == "" {
		return nil, domain.ErrEmptyCart
	}

	items, err := s.carts.ListItems(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	summary := &cartdomain.Summary{Items: items}

	o, err := domain.NewOrder(details, items)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			// Hand the cart back so the form re-renders with it attached.
			return &Placement{Cart: summary}, verr
		}
		return nil, err
	}

	if err := s.store.PlaceOrder(ctx, sessionID, o); err != nil {
		return nil, err
	}

	s.publish(ctx, o)

	return &Placement{Order: o, Cart: summary}, nil
}

// GetOrder fetches a placed order with its lines for the confirmation view.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, domain.ErrNotFound
	}

	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *Service) publish(ctx context.Context, o *domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderConfirmed(ctx, o); err != nil {
		// The order is already committed; an eventing outage must not undo it.
		s.log.Error("publish order confirmed event failed",
			logger.String("order_id", o.ID),
			logger.Error(err),
		)
	}
}
