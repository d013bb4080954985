package dto

import "time"

// ErrorResponse is the standard JSON error payload returned by the API.
//
// The Error field is the only part of the contract callers should rely on;
// Details carries the inner error text when one is available and is omitted
// otherwise. Timestamp records when the response was built.
type ErrorResponse struct {
	Message   string    `json:"error" example:"Произошла ошибка."`
	Details   string    `json:"details,omitempty" example:"invalid date format"`
	Timestamp time.Time `json:"timestamp" example:"2024-10-19T14:15:10Z"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.Details = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel through
// gin's error list.
func (e ErrorResponse) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}
