// Package service contains the business logic of the marketplace: the
// reservation lifecycle, the company directory and the rating
// aggregation.  Services depend on small store interfaces satisfied by
// the repository layer, so they can be exercised in tests without a
// database.  This file defines the error kinds surfaced to handlers.
package service

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a referenced identity does not resolve to
// an existing record.  Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a uniqueness violation, such as registering a
// company whose (name, TIC) pair is already taken.  Handlers translate
// it into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrValidation indicates a structural rule violation in a request.
// Handlers translate it into HTTP 400.
var ErrValidation = errors.New("invalid request")

// notFoundf wraps ErrNotFound with a message naming the missing record.
func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// conflictf wraps ErrConflict with a human-readable message.
func conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// validationf wraps ErrValidation with a message naming the offending field.
func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
