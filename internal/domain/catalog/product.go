package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is mutated only by the checkout
// transaction; everything else is read-only from the shop's point of view.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	ImageURL      string
	Category      string
	LensColor     string
	FrameStyle    string
	StockQuantity int
	CreatedAt     time.Time
}

func NewProduct(name, description string, price decimal.Decimal, imageURL, category, lensColor, frameStyle string, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrMissingField
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   description,
		Price:         price,
		ImageURL:      imageURL,
		Category:      category,
		LensColor:     lensColor,
		FrameStyle:    frameStyle,
		StockQuantity: stock,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Available reports whether the product can still be ordered.
func (p Product) Available() bool {
	return p.StockQuantity > 0
}

// Filter narrows a catalog listing. Empty fields match everything;
// set fields combine with AND semantics.
type Filter struct {
	Category    string
	LensColor   string
	InStockOnly bool
}
