package store

import "errors"

var (
	// ErrNotFound is returned when an item or user identifier is unknown.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock is returned when a requested quantity exceeds availability.
	ErrOutOfStock = errors.New("insufficient stock")

	// ErrConflict is returned on duplicate registration.
	ErrConflict = errors.New("already exists")
)
