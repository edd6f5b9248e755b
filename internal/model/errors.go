package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidArgument  = errors.New("invalid argument")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthError is an authentication failure with a reason that is safe to show
// to the caller. Kind is one of ErrExpiredToken, ErrInvalidToken,
// ErrUserNotFound or ErrInvalidCredentials.
type AuthError struct {
	Kind   error
	Reason string
}

// NewAuthError creates an AuthError of the given kind.
func NewAuthError(kind error, reason string) *AuthError {
	return &AuthError{Kind: kind, Reason: reason}
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Kind
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
