package domain

import (
	"errors"
)

type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "VALIDATION_ERROR"
	ErrorKindNotFound   ErrorKind = "NOT_FOUND"
	ErrorKindUnexpected ErrorKind = "UNEXPECTED_ERROR"
)

// Error is the typed failure returned by usecases. Message is safe to show
// to API callers; Err holds the underlying cause, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports malformed or missing input. Nothing was written.
func Validation(message string) error {
	return &Error{Kind: ErrorKindValidation, Message: message}
}

// ValidationWrap is Validation with a cause attached.
func ValidationWrap(message string, err error) error {
	return &Error{Kind: ErrorKindValidation, Message: message, Err: err}
}

// NotFound reports that a referenced entity does not exist.
func NotFound(message string) error {
	return &Error{Kind: ErrorKindNotFound, Message: message}
}

// Unexpected reports a store or connectivity failure.
func Unexpected(message string, err error) error {
	return &Error{Kind: ErrorKindUnexpected, Message: message, Err: err}
}

// KindOf returns the kind of err, treating untyped errors as unexpected.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindUnexpected
}

// MessageOf returns the caller-facing message of err, or fallback when err
// carries none.
func MessageOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

func IsNotFound(err error) bool {
	return KindOf(err) == ErrorKindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == ErrorKindValidation
}
