package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes plus the message fragments PostgreSQL and SQLite use for them.
// GORM only translates driver errors with TranslateError, so text is the fallback.
var (
	uniqueViolation  = []string{"23505", "duplicate key", "unique constraint"}
	notNullViolation = []string{"23502", "null value", "not null"}
)

func violates(err error, markers []string) bool {
	msg := strings.ToLower(err.Error())
	for _, m := range markers {
		if strings.Contains(msg, m) {
			return true
		}
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || violates(err, uniqueViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return violates(err, notNullViolation)
}
