// Package apperrors defines the error taxonomy shared by all services.
// Services wrap these sentinels with context via fmt.Errorf and %w; handlers
// map them to HTTP status codes with errors.Is. Nothing else is thrown past
// the service boundary.
package apperrors

import "errors"

var (
	// ErrNotFound covers absent orders, order items, products and users.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers malformed status strings, non-positive
	// pagination, incomplete shipping info and empty carts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict covers concurrent stock mutation and duplicate
	// registration.
	ErrConflict = errors.New("conflict")

	// ErrPersistence is transient: the transaction failed to commit and the
	// caller may retry. All other kinds are not retryable.
	ErrPersistence = errors.New("persistence failure")
)
