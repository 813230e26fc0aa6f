package models

import (
	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code             string                    `json:"code"`
	Error            string                    `json:"error"`
	ErrorDescription string                    `json:"error_description,omitempty"`
	Details          []serviceerror.FieldError `json:"details,omitempty"`
}

// NewErrorResponse creates a new error response from a service error
func NewErrorResponse(err *serviceerror.ServiceError) *ErrorResponse {
	return &ErrorResponse{
		Code:             err.Code,
		Error:            err.Error,
		ErrorDescription: err.ErrorDescription,
		Details:          err.Details,
	}
}

// StatusResponse is returned by the root and health endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
