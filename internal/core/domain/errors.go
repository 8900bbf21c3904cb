package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrConfigIncomplete indicates required settings are missing.
	// Detected before the pipeline starts.
	ErrConfigIncomplete = errors.New("configuration incomplete")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
