// Package repository contains the MySQL data access layer, separated
// from HTTP handlers and business services.  This file defines error
// values and helpers shared across repositories so higher layers can
// distinguish failure scenarios without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint.  Services translate this into a conflict error for the
// caller.
var ErrDuplicate = errors.New("duplicate entry")

// isDuplicate reports whether the driver error is a MySQL duplicate
// key violation (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
