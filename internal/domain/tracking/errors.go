package tracking

import "errors"

// Domain errors for ledger operations

var (
	ErrDateRequired  = errors.New("date is required")
	ErrNegativeDelta = errors.New("consumption deltas must be non-negative")
	ErrEntryNotFound = errors.New("tracking entry not found for the given date")
	ErrInvalidWeight = errors.New("weight must be greater than 0 when provided")
)
