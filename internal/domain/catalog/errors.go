package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidStock    = errors.New("stock quantity must not be negative")
)
