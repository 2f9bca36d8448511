package domain

import "errors"

// Sentinel errors shared across services and the delivery layer.
var (
	// ErrNotFound is returned when no entity matches the requested slug or ID.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when an admin login fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("already exists")
	// ErrValidation wraps input validation failures raised below the delivery layer.
	ErrValidation = errors.New("validation failed")
)
