// Package errors provides custom error types for the gestao-financeira API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Profile errors. An unknown profile name is a validation failure; a valid
// profile that does not own the requested record is reported as not-found,
// never as an authorization error.
var (
	ErrInvalidProfile = &AppError{Code: "INVALID_PROFILE", Message: "Unknown profile", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound  = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrDuplicateTransaction = &AppError{Code: "DUPLICATE_TRANSACTION", Message: "A transaction with this ID already exists", StatusCode: http.StatusConflict}
	ErrInvalidCategory      = &AppError{Code: "INVALID_CATEGORY", Message: "Category does not match the transaction type", StatusCode: http.StatusBadRequest}
)

// Backup and remote storage errors. Timeouts are surfaced separately from
// generic unavailability so the client can say "try again later" instead of
// "check connection".
var (
	ErrBackupNotFound     = &AppError{Code: "BACKUP_NOT_FOUND", Message: "No backup exists for this profile", StatusCode: http.StatusNotFound}
	ErrStorageUnavailable = &AppError{Code: "STORAGE_UNAVAILABLE", Message: "Remote storage is unavailable", StatusCode: http.StatusBadGateway}
	ErrStorageTimeout     = &AppError{Code: "STORAGE_TIMEOUT", Message: "Remote storage operation timed out", StatusCode: http.StatusGatewayTimeout}
)
