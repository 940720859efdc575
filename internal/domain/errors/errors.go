// Package errors defines the application-level error taxonomy. Each error
// carries an HTTP status, a stable business code, and a user-facing message
// in Amharic (the storefront's customer locale).
package errors

import (
	"net/http"

	"suq/internal/errors"
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
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"ኢሜይል ወይም የይለፍ ቃል ትክክል አይደለም",
		"",
	)

	ErrAdminCredentials = NewBaseError(
		http.StatusUnauthorized,
		"ADMIN_INVALID_CREDENTIALS",
		"የአስተዳዳሪ መግቢያ ትክክል አይደለም",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"እባክዎ መጀመሪያ ይግቡ",
		"",
	)

	// Registration-related errors
	ErrDuplicateRegistration = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_REGISTRATION",
		"በዚህ ኢሜይል ወይም ስልክ ቁጥር አካውንት አለ",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"የይለፍ ቃል ቢያንስ 6 ፊደል መሆን አለበት",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"የተሞላው መረጃ ትክክል አይደለም",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"ምርቱ አልተገኘም",
		"",
	)

	ErrProductVariant = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_VARIANT_UNAVAILABLE",
		"የተመረጠው መጠን ወይም ቀለም የለም",
		"",
	)

	// Order-related errors
	ErrOrderAlreadyDecided = NewBaseError(
		http.StatusConflict,
		"ORDER_ALREADY_DECIDED",
		"ትዕዛዙ አስቀድሞ ተወስኗል",
		"",
	)

	ErrIllegalStatus = NewBaseError(
		http.StatusBadRequest,
		"ILLEGAL_STATUS",
		"ያልታወቀ የትዕዛዝ ሁኔታ",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"ተጠቃሚው አልተገኘም",
		"",
	)
)
