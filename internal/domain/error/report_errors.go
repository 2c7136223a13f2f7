// Package error defines domain-specific errors for the FinTrack application.
package error

import "errors"

// Report domain errors.
var (
	// ErrMissingUserID is returned when userId is not provided.
	ErrMissingUserID = errors.New("userId is required")

	// ErrInvalidUserID is returned when userId is not a valid identifier.
	ErrInvalidUserID = errors.New("userId is not a valid identifier")

	// ErrMissingCategory is returned when the category parameter is not provided.
	ErrMissingCategory = errors.New("category is required")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingUserID   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidUserID   ReportErrorCode = "RPT-010002"
	ErrCodeMissingCategory ReportErrorCode = "RPT-010003"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
