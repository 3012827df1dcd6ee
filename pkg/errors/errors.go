package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared across the storefront.
var (
	// ErrNotFound means a well-formed identifier matched no record in any
	// collection.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCategory means the requested category string matches no known
	// taxonomy entry. This is a client error, not an empty result.
	ErrInvalidCategory = errors.New("unknown category")

	// ErrInvalidIdentifier means the identifier is malformed and was rejected
	// before any store access.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrStoreUnavailable means the underlying record-store read failed.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrInvalidInput covers malformed request bodies and parameters outside
	// the catalog taxonomy.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized means the request carries no usable user identity.
	ErrUnauthorized = errors.New("unauthorized")
)

// AppError is a structured application error with an HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidCategory creates the 404-class error for a category string that
// resolves to no known taxonomy entry.
func InvalidCategory(raw string) *AppError {
	return &AppError{
		Code:    "INVALID_CATEGORY",
		Message: fmt.Sprintf("category %q does not exist", raw),
		Status:  http.StatusNotFound,
		Err:     ErrInvalidCategory,
	}
}

// InvalidIdentifier creates a 400 error for a malformed item identifier.
func InvalidIdentifier(id string) *AppError {
	return &AppError{
		Code:    "INVALID_IDENTIFIER",
		Message: fmt.Sprintf("malformed item identifier %q", id),
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidIdentifier,
	}
}

// NotFound creates a 404 error for a missing resource.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// StoreUnavailable creates a 503 error wrapping a failed record-store read.
func StoreUnavailable(err error) *AppError {
	return &AppError{
		Code:    "STORE_UNAVAILABLE",
		Message: "catalog store is temporarily unavailable",
		Status:  http.StatusServiceUnavailable,
		Err:     fmt.Errorf("%w: %w", ErrStoreUnavailable, err),
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthorized,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidCategory):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidIdentifier), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
