package errors

import (
	"net/http"

	"agrifarma/internal/errors"
)

// Kind groups AppErrors by how the delivery layer should react to them.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindConflict    Kind = "conflict"
	KindNotFound    Kind = "not_found"
	KindAuth        Kind = "auth"
	KindStock       Kind = "stock"
	KindPersistence Kind = "persistence"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made
// with WithMessage or WithDetails still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the error category.
func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithMessage replaces the user-facing message, keeping the business code.
func (e *BaseError) WithMessage(message string) *BaseError {
	cloned := *e
	cloned.message = message

	return &cloned
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please fill all required fields.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address.",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password must be at least 6 characters long.",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match.",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Price must be greater than 0.",
		"",
	)

	ErrInvalidStock = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_STOCK",
		"Stock quantity cannot be negative.",
		"",
	)

	ErrInvalidSchedule = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_SCHEDULE",
		"Please provide the schedule as YYYY-MM-DDTHH:MM.",
		"",
	)

	ErrShippingAddressRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"SHIPPING_ADDRESS_REQUIRED",
		"Please provide a shipping address.",
		"",
	)

	ErrCartEmpty = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty.",
		"",
	)

	ErrInvalidSpreadsheet = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_SPREADSHEET",
		"The uploaded spreadsheet could not be read.",
		"",
	)

	// Conflict
	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email or username already exists!",
		"",
	)

	// Not found
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No account found with that email.",
		"",
	)

	ErrProductNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found.",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"CATEGORY_NOT_FOUND",
		"The selected category does not exist.",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"No order found.",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found.",
		"",
	)

	// Auth
	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials!",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Please login",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		KindAuth,
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"The password reset link is invalid or has expired.",
		"",
	)

	ErrConsultantNotApproved = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"CONSULTANT_NOT_APPROVED",
		"This user is not an approved consultant.",
		"",
	)

	// Stock
	ErrOutOfStock = NewBaseError(
		KindStock,
		http.StatusBadRequest,
		"OUT_OF_STOCK",
		"This product is out of stock.",
		"",
	)

	ErrCartLimitReached = NewBaseError(
		KindStock,
		http.StatusBadRequest,
		"CART_LIMIT_REACHED",
		"Cannot add more items than available in stock.",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		KindStock,
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Not enough stock available.",
		"",
	)

	// Persistence
	ErrCheckoutFailed = NewBaseError(
		KindPersistence,
		http.StatusInternalServerError,
		"CHECKOUT_FAILED",
		"An error occurred during checkout. Please try again.",
		"",
	)

	ErrInternalError = NewBaseError(
		KindPersistence,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong. Please try again.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternalError.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Kind reports a persistence failure.
func (e *DatabaseExecuteError) Kind() Kind {
	return KindPersistence
}

// KindOf returns the Kind of the first AppError in err's chain, or KindPersistence.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindPersistence
}

// MessageOf returns the user-facing message carried by err, or the generic one.
func MessageOf(err error) string {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Message()
	}

	return ErrInternalError.Message()
}
