package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure. The set is closed: every error the
// service layer raises carries exactly one of these.
type Kind string

const (
	KindNotFound      Kind = "NotFoundError"
	KindInternal      Kind = "InternalError"
	KindConflict      Kind = "ConflictError"
	KindValidation    Kind = "ValidationError"
	KindAuthorization Kind = "AuthorizationError"
)

// Error is a typed domain error. Code is the HTTP status the boundary
// responds with, Source names the failing operation for diagnostics.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
	Source  string `json:"source"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Source)
}

func NotFound(source, message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message, Kind: KindNotFound, Source: source}
}

func Conflict(source, message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message, Kind: KindConflict, Source: source}
}

func Validation(source, message string) *Error {
	return &Error{Code: http.StatusUnprocessableEntity, Message: message, Kind: KindValidation, Source: source}
}

// Unauthorized is for missing or bad credentials (401).
func Unauthorized(source, message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message, Kind: KindAuthorization, Source: source}
}

// Forbidden is for authenticated callers acting on resources they do
// not own (403).
func Forbidden(source, message string) *Error {
	return &Error{Code: http.StatusForbidden, Message: message, Kind: KindAuthorization, Source: source}
}

func Internal(source string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: "internal server error", Kind: KindInternal, Source: source}
}

// From converts any error into an *Error. Unexpected errors become a
// generic Internal so no detail leaks to the client.
func From(err error, source string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(source)
}
