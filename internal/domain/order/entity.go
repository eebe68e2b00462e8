package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goggles_shop/internal/domain/cart"
)

// Order lifecycle labels. Checkout always writes StatusConfirmed; the model
// default StatusPending is never reached on that path.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
)

// Order is the persisted result of a checkout. It exclusively owns its lines;
// lines reference products by id only.
type Order struct {
	ID              string
	CustomerName    string
	Email           string
	ShippingAddress string
	PlacedAt        time.Time
	TotalAmount     decimal.Decimal
	Status          string
	Lines           []Line
}

// Line is a snapshot of one cart line at purchase time. UnitPrice is frozen
// here and never follows later catalog price changes.
type Line struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewOrder snapshots the given cart items into a confirmed order. Unit prices
// are taken from the live product records attached to the items, and the total
// is the exact sum of the line subtotals.
func NewOrder(details CustomerDetails, items []cart.Item) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		ID:              uuid.NewString(),
		CustomerName:    details.CustomerName,
		Email:           details.Email,
		ShippingAddress: details.ShippingAddress,
		PlacedAt:        time.Now().UTC(),
		TotalAmount:     decimal.Zero,
		Status:          StatusConfirmed,
		Lines:           make([]Line, 0, len(items)),
	}

	for _, item := range items {
		line := Line{
			ID:          uuid.NewString(),
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Line.Quantity,
			UnitPrice:   item.Product.Price,
		}
		o.Lines = append(o.Lines, line)
		o.TotalAmount = o.TotalAmount.Add(line.Subtotal())
	}

	return o, nil
}
