package errs

import (
	"net/http"
)

// statusCode builds the default machine code from the HTTP status text.
// http.StatusText(409) => "Conflict" => "CONFLICT"
func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// FromStatus creates an HTTPError for an arbitrary status and message.
//
// Used by the database error translator, whose table decides the status
// per error code. code is the machine code to log with (e.g. "P2002");
// an empty code falls back to the status text.
func FromStatus(status int, message string, code string) *HTTPError {
	if code == "" {
		code = statusCode(status)
	}

	return &HTTPError{
		Status:  status,
		Message: message,
		Code:    code,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string) *HTTPError {
	return FromStatus(http.StatusUnauthorized, message, "")
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return FromStatus(http.StatusForbidden, message, "")
}

// NewConflictError creates a 409 Conflict HTTPError.
func NewConflictError(message string) *HTTPError {
	return FromStatus(http.StatusConflict, message, "")
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return FromStatus(http.StatusTooManyRequests, message, "")
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)

	// Note: this assumes the caller already formatted it the way they want.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
		Errors:  errors,
		Code:    formattedCode,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: message,
		Code:    formattedCode,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error message.
// Clients don't need your stack traces.
func NewInternalServerError() *HTTPError {
	return FromStatus(
		http.StatusInternalServerError,
		http.StatusText(http.StatusInternalServerError),
		"",
	)
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
//
//	return errs.ValidationError(err)
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
