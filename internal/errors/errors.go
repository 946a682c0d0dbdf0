// Package errors is the single import for error handling. Matching goes
// through the standard library; wrapping goes through pkg/errors so every
// annotated error carries the stack of the call that wrapped it.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error without a stack. Use it for sentinels.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf formats a new error and records the stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType is As for callers that only need the matched value.
//
//	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok { ... }
func AsType[T any](err error) (T, bool) {
	var target T
	if err == nil {
		return target, false
	}

	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with message and a stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
