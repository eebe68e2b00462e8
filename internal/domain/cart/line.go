package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goggles_shop/internal/domain/catalog"
)

// Quantity bounds for a single cart line. A line below MinQuantity does not
// exist; merged additions are capped at MaxQuantity.
const (
	MinQuantity = 1
	MaxQuantity = 100
)

// Line is one product in one session's cart. The session id is an opaque
// browser token, not a user identity.
type Line struct {
	ID        string
	SessionID string
	ProductID string
	Quantity  int
}

func NewLine(sessionID, productID string, quantity int) (*Line, error) {
	if sessionID == "" || productID == "" {
		return nil, ErrMissingField
	}
	if quantity < MinQuantity {
		return nil, ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	return &Line{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}, nil
}

// Item is a cart line joined with its current product record.
type Item struct {
	Line    Line
	Product catalog.Product
}

// Subtotal is computed from the live product price, not a frozen one.
// Prices freeze only when the cart becomes an order.
func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Line.Quantity)))
}

// Summary is the cart as the presentation layer consumes it.
type Summary struct {
	Items []Item
}

func (s Summary) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (s Summary) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Line.Quantity
	}
	return count
}

func (s Summary) Empty() bool {
	return len(s.Items) == 0
}
