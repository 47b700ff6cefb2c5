// Package common defines shared constants and sentinel errors used across
// client and server layers of QRKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors (missing or empty required fields).
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrorEmailAlreadyExists = errors.New("email already registered")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorForbidden          = errors.New("not authorized")

	// Token lifecycle errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
