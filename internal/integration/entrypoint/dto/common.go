package dto

import "time"

// timeFormat is the timestamp layout used across API responses.
const timeFormat = time.RFC3339

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// NewErrorResponse builds an error payload with the standard envelope.
func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	}
}

// DeleteResponse represents the response for a successful deletion.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
