package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced in driver error text
const (
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
	sqlStateUniqueViolation  = "23505"
)

// isUniqueConstraintViolation reports a duplicate primary key; ids are generated client-side.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), sqlStateUniqueViolation)
}

// isCheckConstraintViolation reports an outcome outside approved/pending/rejected.
func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || strings.Contains(err.Error(), sqlStateCheckViolation)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}
