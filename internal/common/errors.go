// Package common defines shared constants and sentinel errors used across
// blogd components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email is already in use")
	ErrDuplicateUserName = errors.New("username is already in use")

	// Service-level errors (generic/internal flow control).
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Credential errors. The login path returns ErrInvalidCredential for both
	// an unknown email and a wrong password so responses do not reveal which
	// accounts exist.
	ErrInvalidCredential = errors.New("invalid email/password")
	ErrAccountMismatch   = errors.New("account mismatch")

	// Token lifecycle errors.
	ErrMissingToken      = errors.New("missing token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("token signature mismatch")
)
