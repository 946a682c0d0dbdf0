package store

import (
	"strings"

	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/domain/repository"
	"agrifarma/internal/errors"

	"gorm.io/gorm"
)

// translateWriteError maps constraint violations onto repository sentinels and
// everything else onto a DatabaseExecuteError.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicateKey, details)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(repository.ErrForeignKeyViolation, details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Dialects without an error translator still report the constraint in the message.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "violates foreign key") ||
		strings.Contains(errMsg, "23503")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") || strings.Contains(errMsg, "23514")
}
