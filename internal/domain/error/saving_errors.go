// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Saving domain errors.
var (
	// ErrSavingNotFound is returned when a saving does not exist.
	ErrSavingNotFound = errors.New("saving not found")

	// ErrInvalidSavingAmount is returned when the amount is not positive.
	ErrInvalidSavingAmount = errors.New("amount must be greater than zero")

	// ErrMissingSavingGoal is returned when the goal is empty.
	ErrMissingSavingGoal = errors.New("goal is required")

	// ErrMissingSavingDate is returned when the date is not provided.
	ErrMissingSavingDate = errors.New("date is required")
)

// SavingErrorCode defines error codes for saving errors.
// Format: SAV-XXYYYY where XX is category and YYYY is specific error.
type SavingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSavingAmount SavingErrorCode = "SAV-010001"
	ErrCodeMissingSavingGoal   SavingErrorCode = "SAV-010002"
	ErrCodeMissingSavingDate   SavingErrorCode = "SAV-010003"

	// Not found errors (02XXXX)
	ErrCodeSavingNotFound SavingErrorCode = "SAV-020001"

	// Internal errors (99XXXX)
	ErrCodeSavingInternalError SavingErrorCode = "SAV-990001"
)

// SavingError represents a saving error with code and message.
type SavingError struct {
	Code    SavingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingError) Unwrap() error {
	return e.Err
}

// NewSavingError creates a new SavingError with the given code and message.
func NewSavingError(code SavingErrorCode, message string, err error) *SavingError {
	return &SavingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
