package cart

import "errors"

var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("quantity must be at least one")
	ErrMissingField    = errors.New("required field is missing")
)
