// Package error defines domain-specific errors for the Tax Planner application.
package error

import "errors"

// Tax engine domain errors.
var (
	// ErrInvalidRegime is returned when an unrecognized tax regime tag reaches the engine.
	// Regime validation happens at the API boundary, so hitting this error indicates a
	// programming-contract violation rather than bad user input.
	ErrInvalidRegime = errors.New("invalid tax regime: must be 'old' or 'new'")

	// ErrNegativeIncome is returned when a negative income value reaches a use case.
	ErrNegativeIncome = errors.New("income cannot be negative")
)

// TaxErrorCode defines error codes for tax engine errors.
// Format: TAX-XXYYYY where XX is category and YYYY is specific error.
type TaxErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRegime    TaxErrorCode = "TAX-010001"
	ErrCodeNegativeIncome   TaxErrorCode = "TAX-010002"
	ErrCodeMissingTaxFields TaxErrorCode = "TAX-010003"
)

// TaxError represents a tax engine error with code and message.
type TaxError struct {
	Code    TaxErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaxError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaxError) Unwrap() error {
	return e.Err
}

// NewTaxError creates a new TaxError with the given code and message.
func NewTaxError(code TaxErrorCode, message string, err error) *TaxError {
	return &TaxError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
