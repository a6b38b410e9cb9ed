package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Field complaint messages shared by the validator and the use cases.
const (
	MsgRequiredField  = "Please provide a value for %q"
	MsgInvalidEmail   = "Please provide a valid email address for %q"
	MsgDuplicateEmail = "The email address you entered is already in use"
	MsgMalformedBody  = "Request body must be valid JSON"
)

// ValidationError is an ordered list of field complaints. It is returned as a
// 400 response body and never reaches a caller as a fault.
type ValidationError struct {
	Fields []string
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// RequiredField returns the complaint for a missing value.
func RequiredField(label string) string {
	return fmt.Sprintf(MsgRequiredField, label)
}

// InvalidEmail returns the complaint for a malformed address.
func InvalidEmail(label string) string {
	return fmt.Sprintf(MsgInvalidEmail, label)
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return "Validation failed"
}

func (e *ValidationError) Details() string {
	return strings.Join(e.Fields, "\n")
}
