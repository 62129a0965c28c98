package db

import "errors"

var (
	// ErrMealNotFound is returned when a ledger id does not exist.
	ErrMealNotFound = errors.New("meal not found")

	// ErrValidation is returned when a write is rejected before touching
	// the store (missing required field, out-of-enum status).
	ErrValidation = errors.New("validation failed")

	// ErrStorageUnavailable is returned when the underlying store cannot
	// be opened or reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
