package domain

import (
	"errors"
	"net/http"
)

// Error code constants exposed on the wire. The set is closed: every
// failure leaving the API maps to exactly one of these.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeService      = "SERVICE_ERROR"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

// Error is a user-visible failure with a wire code and HTTP status.
// Message carries only curated text, never internal diagnostics.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(msg string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

func NewConflictError(msg string) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusConflict, Message: msg}
}

func NewUnauthorizedError(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

func NewForbiddenError(msg string) *Error {
	return &Error{Code: CodeForbidden, Status: http.StatusForbidden, Message: msg}
}

func NewServiceError(msg string) *Error {
	return &Error{Code: CodeService, Status: http.StatusServiceUnavailable, Message: msg}
}

func NewInternalError(msg string) *Error {
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: msg}
}

// AsError extracts a *Error from err, or wraps it as an internal error with
// a generic message so nothing leaks to the caller.
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return NewInternalError("An unexpected error occurred")
}

// Repository-level sentinels. Services translate them into curated
// taxonomy errors naming the resource.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
