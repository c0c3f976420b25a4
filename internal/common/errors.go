// Package common defines shared constants and sentinel errors used across
// the service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors (missing or malformed input, client-fixable).
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrNoCredential means no credential was presented at all;
	// ErrInvalidCredentials deliberately merges unknown-email, bad-password
	// and bad/expired-token so callers cannot tell which check failed.
	ErrNoCredential       = errors.New("no credential")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
