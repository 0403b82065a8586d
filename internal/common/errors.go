// Package common defines shared helpers and sentinel errors used across
// the LoginSimulator components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAccountExists = errors.New("account already exists")

	// Validation errors (malformed e-mail syntax, empty password).
	ErrorValidation = errors.New("validation error")

	// Authentication errors (password or code mismatch).
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotAuthenticated     = errors.New("not authenticated")

	// One-time-code lifecycle errors.
	ErrCodeExpired  = errors.New("code expired")
	ErrCodeConsumed = errors.New("code already used")

	// Notifier errors.
	ErrorDelivery = errors.New("delivery error")
)
