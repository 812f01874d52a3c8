package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing customerName or coffeeItems")
	ErrEmptyItems            = errors.New("coffeeItems must not be empty")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("order already exists")
)
