// Package errors defines application-level errors carrying HTTP and business codes.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
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

// Is matches errors by business code, so a WithDetails-derived error still
// matches the predefined base it came from.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrProductSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRODUCT_SAVE_FAILED",
		"failed to save product",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"order must contain at least one item",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"unknown order status",
		"",
	)

	ErrInvalidLocationType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCATION_TYPE",
		"unknown delivery zone",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"failed to create order",
		"",
	)

	// Activity errors
	ErrInvalidActivityKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTIVITY_KIND",
		"unknown activity kind",
		"",
	)

	// Settings errors
	ErrSettingsUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"SETTINGS_UPDATE_FAILED",
		"failed to update delivery charge",
		"",
	)

	// Media errors
	ErrUnsupportedMediaType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_MEDIA_TYPE",
		"only image or video uploads are accepted",
		"",
	)

	ErrMediaUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_UPLOAD_FAILED",
		"failed to upload media file",
		"",
	)

	// Generic database errors
	ErrDatabaseQuery = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_QUERY_ERROR",
		"database query failed",
		"",
	)

	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		"database operation failed",
		"",
	)
)

// NewDatabaseQueryError wraps a low-level read failure as an AppError.
func NewDatabaseQueryError(err error, details string) error {
	if details == "" && err != nil {
		details = err.Error()
	}

	return ErrDatabaseQuery.WithDetails(details)
}

// NewDatabaseExecuteError wraps a low-level write failure as an AppError.
func NewDatabaseExecuteError(err error, details string) error {
	if details == "" && err != nil {
		details = err.Error()
	}

	return ErrDatabaseExecute.WithDetails(details)
}
