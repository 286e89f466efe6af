// Package error defines domain-specific errors for the Tax Planner application.
package error

import "errors"

// Calculation history domain errors.
var (
	// ErrCalculationNotFound is returned when a calculation record does not exist
	// or does not belong to the requesting user. Ownership misses deliberately
	// report not-found rather than forbidden so that record IDs of other users
	// cannot be probed.
	ErrCalculationNotFound = errors.New("tax calculation not found")

	// ErrStoreUnavailable is returned when the persistence layer fails transiently.
	// Callers may retry reads; record creation is not idempotent and must not be
	// blindly retried.
	ErrStoreUnavailable = errors.New("calculation history store unavailable")

	// ErrInvalidPage is returned when pagination parameters are not positive integers.
	ErrInvalidPage = errors.New("page and page_size must be positive")
)

// HistoryErrorCode defines error codes for calculation history errors.
// Format: HIST-XXYYYY where XX is category and YYYY is specific error.
type HistoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPage HistoryErrorCode = "HIST-010001"

	// Lookup errors (02XXXX)
	ErrCodeCalculationNotFound HistoryErrorCode = "HIST-020001"

	// Store errors (50XXXX)
	ErrCodeStoreUnavailable HistoryErrorCode = "HIST-500001"
)

// HistoryError represents a calculation history error with code and message.
type HistoryError struct {
	Code    HistoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HistoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HistoryError) Unwrap() error {
	return e.Err
}

// NewHistoryError creates a new HistoryError with the given code and message.
func NewHistoryError(code HistoryErrorCode, message string, err error) *HistoryError {
	return &HistoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
