package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// duplicateKeyMessages covers dialectors that do not translate unique violations
var duplicateKeyMessages = []string{
	"ORA-00001",                // Oracle
	"UNIQUE constraint failed", // SQLite
	"Duplicate entry",          // MySQL
	"duplicate key value",      // PostgreSQL
}

// IsDuplicateKeyError reports whether err is a unique constraint violation
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	for _, m := range duplicateKeyMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
