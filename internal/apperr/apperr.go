// Package apperr defines the typed error taxonomy shared by the service
// layer and the HTTP handlers. Services return these instead of raw
// errors so callers can distinguish "sign in first" from "not yours"
// from "bad input" from "try again later".
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure
type Kind string

const (
	// Unauthenticated means no valid session; recoverable by signing in
	Unauthenticated Kind = "unauthenticated"
	// Forbidden means authenticated but not the resource owner
	Forbidden Kind = "forbidden"
	// ValidationFailed means client input violates a contract
	ValidationFailed Kind = "validation_failed"
	// NotFound means the referenced resource no longer exists
	NotFound Kind = "not_found"
	// Backend means a transient storage/backend failure; callers may retry
	Backend Kind = "backend_error"
)

// Error is a classified service error. Fields carries optional
// field-level messages for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without a wrapped cause
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error around an underlying cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a ValidationFailed error with field-level details
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: ValidationFailed, Message: message, Fields: fields}
}

// KindOf returns the classification of err, or "" for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is classified as kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
