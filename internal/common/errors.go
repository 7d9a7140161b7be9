// Package common defines shared constants and sentinel errors used across
// client and server layers of gophauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorValidation    = errors.New("validation error")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// Registration errors. Each one matches its kind via errors.Is while
// keeping a message that is safe to echo back to the caller.
var (
	ErrPasswordsDoNotMatch    = newKindError(ErrorValidation, "passwords do not match")
	ErrWeakPassword           = newKindError(ErrorValidation, "password is not strong enough")
	ErrEmailAlreadyRegistered = newKindError(ErrorAlreadyExists, "email already registered")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
