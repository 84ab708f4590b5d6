package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// normalizeName lowercases an entity name for storage. The API layer
// capitalizes names again on output.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// isUniqueViolation reports whether err is a unique-constraint error
// from the underlying store. Covers both the postgres driver and the
// sqlite driver used in tests; constraint races between concurrent
// requests surface here and become Conflict for the caller.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
