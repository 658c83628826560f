package pairtable

import "errors"

var (
	// ErrNotFound is returned when a key, a key pair or a primary key
	// is not present in the table.
	ErrNotFound = errors.New("key not found")

	// ErrCapacityExhausted is returned when an insert can't find an empty slot
	// within one full probe cycle and the capacity schedule can't grow further.
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrInvalidSizes is returned when a capacity schedule is empty,
	// contains non-positive values or is not strictly ascending.
	ErrInvalidSizes = errors.New("invalid capacity schedule")
)
