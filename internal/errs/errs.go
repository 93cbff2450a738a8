// Package errs defines the error type shared by the service, repository and
// HTTP layers. Every failure that should reach a client carries a Kind; the
// HTTP layer maps kinds to status codes in one place.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error independently of transport.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
	KindInternal     Kind = "internal"
)

// FieldError is a single field-level violation.
//
//	{ "field": "title", "error": "must be at least 5 characters" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the tagged failure value returned by domain services and
// repositories.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput reports a request the service refuses before touching the store.
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// Validation reports schema constraint violations.
func Validation(message string, fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Conflict reports a uniqueness violation.
func Conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// Unavailable reports that the document store could not be reached in time.
func Unavailable(message string, err error) *Error {
	return &Error{Kind: KindUnavailable, Message: message, Err: err}
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
