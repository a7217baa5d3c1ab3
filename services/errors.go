package services

import "errors"

// Sentinel errors the controllers translate to HTTP statuses:
// ErrValidation -> 400, ErrNotFound -> 404, anything else -> 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
