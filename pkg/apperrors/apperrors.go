// Package apperrors defines the domain error type shared by services and the
// HTTP transport. Errors carry a machine-readable code, a human message in the
// site's locale, and, for validation failures, field-scoped details.
package apperrors

import (
	"errors"
	"net/http"
)

// Code identifies an error class for clients.
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeCaptcha    Code = "CAPTCHA_ERROR"
	CodeSubmission Code = "SUBMISSION_ERROR"
	CodeNotFound   Code = "NOT_FOUND"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// FieldError pins a validation message to the offending field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the domain error surfaced across service boundaries.
type Error struct {
	Code    Code
	Message string
	Details []FieldError
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New builds a detail-less domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewValidation builds a VALIDATION_ERROR carrying field-level details.
func NewValidation(message string, details []FieldError) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

// HasCode reports whether err is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// From unwraps err into a domain error, or wraps it as CodeInternal so the
// transport always has a code and message to serialize.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeInternal, Message: "internal error"}
}

// ToHTTPStatus maps error codes to HTTP status codes.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeCaptcha:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeSubmission, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
