package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "goggles_shop/internal/domain/cart"
	catalogdomain "goggles_shop/internal/domain/catalog"
	"goggles_shop/internal/domain/repository"
)

// Service implements the cart operations. Every method takes the resolved
// session id as an argument; minting and remembering the token is the HTTP
// layer's job.
type Service struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewService(carts repository.CartRepository, products repository.ProductRepository) *Service {
	return &Service{carts: carts, products: products}
}

// NewSessionID mints an opaque cart session token.
func NewSessionID() string {
	return uuid.NewString()
}

// AddResult reports the line affected by an add plus a confirmation message
// naming the product.
type AddResult struct {
	Line    domain.Line
	Message string
}

// AddItem puts quantity units of a product into the session's cart. A repeat
// add of the same product merges into the existing line instead of creating a
// second one; the merge is delegated to the repository so it holds under
// concurrent adds too.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*AddResult, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, catalogdomain.ErrProductNotFound
	}

	line, err := domain.NewLine(sessionID, productID, quantity)
	if err != nil {
		return nil, err
	}

	merged, err := s.carts.MergeLine(ctx, line)
	if err != nil {
		return nil, fmt.Errorf("merge cart line: %w", err)
	}

	return &AddResult{
		Line:    *merged,
		Message: fmt.Sprintf("%s added to cart!", product.Name),
	}, nil
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or less
// deletes the line.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) error {
	line, err := s.carts.FindLine(ctx, sessionID, lineID)
	if err != nil {
		return fmt.Errorf("find cart line: %w", err)
	}
	if line == nil {
		return domain.ErrLineNotFound
	}

	if quantity <= 0 {
		if err := s.carts.Delete(ctx, sessionID, lineID); err != nil {
			return fmt.Errorf("delete cart line: %w", err)
		}
		return nil
	}

	if quantity > domain.MaxQuantity {
		quantity = domain.MaxQuantity
	}
	line.Quantity = quantity

	if err := s.carts.Save(ctx, line); err != nil {
		return fmt.Errorf("save cart line: %w", err)
	}
	return nil
}

// RemoveItem deletes a line. Removing a line that does not exist is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, lineID string) error {
	if err := s.carts.Delete(ctx, sessionID, lineID); err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

// ListItems returns the session's cart joined with current product data.
func (s *Service) ListItems(ctx context.Context, sessionID string) (*domain.Summary, error) {
	items, err := s.carts.ListItems(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	return &domain.Summary{Items: items}, nil
}

// TotalQuantity sums the session's line quantities; unknown sessions count 0.
func (s *Service) TotalQuantity(ctx context.Context, sessionID string) (int, error) {
	if sessionID == "" {
		return 0, nil
	}
	count, err := s.carts.TotalQuantity(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("total cart quantity: %w", err)
	}
	return count, nil
}

// Clear deletes all of the session's lines.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
