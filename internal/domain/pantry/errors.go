package pantry

import "errors"

// Domain errors for pantry operations

var (
	ErrNameRequired     = errors.New("pantry item name is required")
	ErrInvalidQuantity  = errors.New("quantity must be greater than 0")
	ErrInvalidUnit      = errors.New("unit must be one of the supported measurement units")
	ErrInvalidExpiresIn = errors.New("expiresIn must be a positive number of days")
)
