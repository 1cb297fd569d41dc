package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation    = "validation"
	CodeNotFound      = "not_found"
	CodeDuplicate     = "duplicate"
	CodeParentMissing = "parent_missing"
	CodeUnauthorized  = "unauthorized"
	CodeInternal      = "internal"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, CodeValidation, fmt.Errorf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf(format, args...))
}

func Duplicate(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeDuplicate, fmt.Errorf(format, args...))
}

// ParentMissing maps to 404 at the HTTP surface, but keeps its own code so
// callers can tell "your parent reference is dangling" apart from "the row
// you addressed is gone".
func ParentMissing(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, CodeParentMissing, fmt.Errorf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, fmt.Errorf(format, args...))
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}

// From extracts the typed error from an error chain, or wraps the error as an
// internal failure so that unexpected store errors never leak detail upward
// with the wrong status.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}

func IsCode(err error, code string) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
