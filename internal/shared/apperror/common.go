package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrMethodNotAllowed = New(
		CodeMethodNotAllowed,
		"Method not allowed",
		http.StatusMethodNotAllowed,
	)
)

// RequiredField reports a missing field. field is the wire name of the field.
func RequiredField(field string) *AppError {
	e := New(CodeInvalidInput, fmt.Sprintf("%s is required", HumanizeField(field)), http.StatusBadRequest)
	e.Field = field
	return e
}

// InvalidField reports a field that is present but fails validation.
func InvalidField(field, reason string) *AppError {
	msg := fmt.Sprintf("%s is invalid", HumanizeField(field))
	if reason != "" {
		msg = fmt.Sprintf("%s is invalid: %s", HumanizeField(field), reason)
	}
	e := New(CodeInvalidInput, msg, http.StatusBadRequest)
	e.Field = field
	return e
}
