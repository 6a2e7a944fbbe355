package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for SQLite error checking. The glebarez driver surfaces
// SQLITE_CONSTRAINT failures as plain errors, so the column is recovered
// from the message text ("UNIQUE constraint failed: staff.email").
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isUniqueViolationOn(err error, table, column string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}

	return strings.Contains(err.Error(), table+"."+column)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := err.Error()

	return strings.Contains(errMsg, "NOT NULL constraint failed") ||
		strings.Contains(errMsg, "null value")
}
