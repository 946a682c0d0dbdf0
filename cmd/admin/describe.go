package main

import (
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"
)

// describe keeps the operator-facing message of a domain error and the full
// chain of anything else.
func describe(err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.Kind() != domainerrors.KindPersistence {
		if details := appErr.Details(); details != "" {
			return errors.Errorf("%s (%s)", appErr.Message(), details)
		}

		return errors.New(appErr.Message())
	}

	return err
}
