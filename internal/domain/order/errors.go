package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrEmptyCart is a redirect signal, not a failure: checkout was reached
	// with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// InsufficientStockError rejects a checkout whose quantity would drive a
// product's stock below zero.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available,
	)
}
