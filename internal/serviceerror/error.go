package serviceerror

// ServiceErrorType separates caller faults from server faults
type ServiceErrorType string

const (
	ClientErrorType ServiceErrorType = "client_error"
	ServerErrorType ServiceErrorType = "server_error"
)

// FieldError describes one invalid field of a request payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ServiceError is the failure result returned by every service operation
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
	Details          []FieldError     `json:"details,omitempty"`
}

var (
	InternalServerError = ServiceError{
		Type:             ServerErrorType,
		Code:             "SSE-5000",
		Error:            "Internal Server Error",
		ErrorDescription: "An unexpected error occurred",
	}

	StorageError = ServiceError{
		Type:             ServerErrorType,
		Code:             "SSE-5001",
		Error:            "Database Write Failed",
		ErrorDescription: "A database error occurred",
	}

	InvalidRequestError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4000",
		Error:            "Invalid Request",
		ErrorDescription: "The request is invalid",
	}

	ValidationError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4001",
		Error:            "Validation Failed",
		ErrorDescription: "One or more fields are invalid",
	}

	UnauthorizedError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4010",
		Error:            "Missing API Key",
		ErrorDescription: "The x-api-key header is required",
	}

	NotFoundError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4040",
		Error:            "Not Found",
		ErrorDescription: "The requested resource does not exist",
	}

	ForbiddenError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4030",
		Error:            "Invalid API Key",
		ErrorDescription: "The API key does not belong to a registered tenant",
	}
)

// CustomServiceError copies baseError with a different description
func CustomServiceError(baseError ServiceError, description string) *ServiceError {
	return &ServiceError{
		Type:             baseError.Type,
		Code:             baseError.Code,
		Error:            baseError.Error,
		ErrorDescription: description,
	}
}

// CustomMessageError copies baseError with a different caller-facing message
func CustomMessageError(baseError ServiceError, message string) *ServiceError {
	return &ServiceError{
		Type:             baseError.Type,
		Code:             baseError.Code,
		Error:            message,
		ErrorDescription: baseError.ErrorDescription,
	}
}

// ValidationFailure builds a ValidationError carrying every failing field
func ValidationFailure(details []FieldError) *ServiceError {
	return &ServiceError{
		Type:             ValidationError.Type,
		Code:             ValidationError.Code,
		Error:            ValidationError.Error,
		ErrorDescription: ValidationError.ErrorDescription,
		Details:          details,
	}
}

// New returns a copy of baseError that callers may modify
func New(baseError ServiceError) *ServiceError {
	err := baseError
	return &err
}

// HasField reports whether a field error was recorded for name
func (e *ServiceError) HasField(name string) bool {
	for _, d := range e.Details {
		if d.Field == name {
			return true
		}
	}
	return false
}
