// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures..
// (e.g. FieldErrors for forms or HTTPError for API responses)..
// to ensure the client receive meaningful, actionable, and consistent..
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation errors for request payloads.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "passwordConfirm", "error": "must match password" }
type FieldError struct {
	// Field is the JSON field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It serializes to the response body every client sees on failure:
//
//	{ "statusCode": 409, "message": "..." }
//
// Errors is only present when a request payload failed validation.
// Code is a machine-friendly code (e.g. "BAD_REQUEST" or a database code
// like "P2011"). It is used for logs and is never written to the body.
type HTTPError struct {
	Status  int          `json:"statusCode"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Code    string       `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// Printing/logging the error shows the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It returns true if `target` is also a *HTTPError. It does NOT compare
// Code/Status/etc, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Message: message,
		Errors:  e.Errors,
		Code:    e.Code,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
