// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the amount is not positive.
	ErrInvalidBudgetAmount = errors.New("amount must be greater than zero")

	// ErrMissingBudgetCategory is returned when the category is empty.
	ErrMissingBudgetCategory = errors.New("category is required")

	// ErrInvalidBudgetPeriod is returned when the period is not week, month or year.
	ErrInvalidBudgetPeriod = errors.New("period must be one of: week, month, year")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BDG-010001"
	ErrCodeMissingBudgetCategory BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BDG-010003"

	// Not found errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BDG-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
