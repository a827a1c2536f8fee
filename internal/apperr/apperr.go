package apperr

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrValidation is a generic sentinel for invalid input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrOffline marks persistence failures caused by an unreachable store.
	ErrOffline = errors.New("offline")
)

// Error codes surfaced to the frontend in the error envelope.
const (
	CodeInvalidCredential = "invalid-credential"
	CodeInvalidEmail      = "invalid-email"
	CodeWeakPassword      = "weak-password"
	CodeEmailInUse        = "email-already-in-use"
	CodeValidation        = "validation"
	CodeOffline           = "offline"
	CodeNotFound          = "not-found"
	CodeUnauthorized      = "unauthorized"
)

// AuthError carries one of the auth codes plus a user-facing message.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func NewAuthError(code, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

// Persistence classifies a storage error: network-level failures become
// ErrOffline so the frontend can distinguish "you are offline" from a
// generic failure.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Join(ErrOffline, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrOffline, err)
	}
	return err
}

// Code maps an error to its envelope code.
func Code(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	switch {
	case errors.Is(err, ErrOffline):
		return CodeOffline
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	}
	return ""
}
