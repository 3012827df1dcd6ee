package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
	"github.com/digitalbuddiesspune/stylegenz/pkg/logger"
	"github.com/digitalbuddiesspune/stylegenz/pkg/pagination"
	"github.com/digitalbuddiesspune/stylegenz/pkg/validator"
)

// Response is the standard JSON response envelope.
type Response struct {
	Data  any            `json:"data,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse represents an error in the standard response format.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// ListResponse is the envelope for paginated catalog listings.
type ListResponse[T any] struct {
	Items      []T                 `json:"items"`
	Pagination pagination.Envelope `json:"pagination"`
}

// NewListResponse builds a listing envelope, normalizing nil slices to empty.
func NewListResponse[T any](items []T, env pagination.Envelope) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Pagination: env}
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a standardized error response based on the error type.
// It prefers the request-scoped logger from context over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	writeError(w, r, err, fallback, nil)
}

// WriteListError is WriteError for listing endpoints: alongside the error it
// attaches an empty items/pagination envelope so storefront UIs can render a
// "no results" state instead of crashing on a missing body shape.
func WriteListError(w http.ResponseWriter, r *http.Request, err error, params pagination.Params, fallback *slog.Logger) {
	empty := NewListResponse[json.RawMessage](nil, pagination.Empty(params))
	writeError(w, r, err, fallback, &empty)
}

func writeError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger, data any) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	requestID := logger.CorrelationIDFromContext(r.Context())

	resp := Response{}
	if data != nil {
		resp.Data = data
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp.Error = &ErrorResponse{Code: appErr.Code, Message: appErr.Message, RequestID: requestID}
		WriteJSON(w, appErr.Status, resp)
		return
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code = "NOT_FOUND"
		message = "resource not found"
	case errors.Is(err, apperrors.ErrInvalidCategory):
		code = "INVALID_CATEGORY"
		message = err.Error()
	case errors.Is(err, apperrors.ErrInvalidIdentifier):
		code = "INVALID_IDENTIFIER"
		message = err.Error()
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		code = "STORE_UNAVAILABLE"
		message = "catalog store is temporarily unavailable"
	case errors.Is(err, apperrors.ErrInvalidInput):
		code = "INVALID_INPUT"
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	resp.Error = &ErrorResponse{Code: code, Message: message, RequestID: requestID}
	WriteJSON(w, status, resp)
}

// WriteValidationError writes a standardized validation error response with
// field-level details when available.
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteJSON(w, http.StatusBadRequest, Response{
			Error: &ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "request validation failed",
				Fields:  valErr.Fields(),
			},
		})
		return
	}

	WriteJSON(w, http.StatusBadRequest, Response{
		Error: &ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()},
	})
}

// ParseUUID validates that the given string is a valid UUID and returns it.
// On failure it writes the INVALID_IDENTIFIER error response and returns
// false, signaling the caller to return early.
func ParseUUID(w http.ResponseWriter, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(param)
	if err != nil {
		appErr := apperrors.InvalidIdentifier(param)
		WriteJSON(w, appErr.Status, Response{
			Error: &ErrorResponse{Code: appErr.Code, Message: appErr.Message},
		})
		return uuid.Nil, false
	}
	return id, true
}
