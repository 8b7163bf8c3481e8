// internal/core/domain/errors.go
package domain

import "errors"

// Error kinds surfaced by the core services. Callers classify failures with
// errors.Is; the concrete message carries the detail.
var (
	ErrNotFound                = errors.New("not found")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrAlreadyExists           = errors.New("already exists")
)
