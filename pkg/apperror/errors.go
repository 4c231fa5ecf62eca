package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}

	// ErrIncompleteDraft is returned before any remote call when the draft has no
	// customer or no lines.
	ErrIncompleteDraft = &AppError{Code: http.StatusBadRequest, Message: "Debe seleccionar un cliente y agregar al menos un producto."}

	// ErrInvalidQuantity rejects zero or negative quantities before stock is even consulted.
	ErrInvalidQuantity = &AppError{Code: http.StatusBadRequest, Message: "Debes seleccionar un producto válido y una cantidad mayor a cero."}
)

// StockError reports a rejected draft mutation. Available is the product's stock
// ceiling as last observed, so callers can build the operator-facing message.
type StockError struct {
	ProductName string
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available", e.ProductName, e.Available)
}

// TransportError wraps a network or server failure on a remote call. The draft and
// candidate state are preserved; the operation can simply be retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewValidationError creates a 422 error carrying per-field messages
func NewValidationError(fieldErrors map[string][]string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// IsStockRejection checks whether err is a local stock-ceiling rejection.
func IsStockRejection(err error) bool {
	var stockErr *StockError
	return errors.As(err, &stockErr)
}

// IsTransport checks whether err is a network or server failure.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsStockConflict reports whether a remote validation failure is the backend's
// insufficient-stock signal, as opposed to a generic field error. The backend keys
// these under "stock" (or mentions stock in the message) in its 422 errors map.
func IsStockConflict(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusUnprocessableEntity {
		return false
	}
	for field, messages := range appErr.Errors {
		if strings.Contains(strings.ToLower(field), "stock") {
			return true
		}
		for _, msg := range messages {
			if strings.Contains(strings.ToLower(msg), "stock") {
				return true
			}
		}
	}
	return strings.Contains(strings.ToLower(appErr.Message), "stock")
}
