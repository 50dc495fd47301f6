package domain

import "errors"

var (
	// ErrInvalidInput marks payloads rejected before any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks operations targeting an id with no stored record.
	// Delete is the exception: a missing target folds into success=false.
	ErrNotFound = errors.New("not found")
)
