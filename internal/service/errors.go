package service

import "errors"

// Sentinel errors returned by service methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDataProvided is returned when an inbound request body is
	// schematically valid JSON but fails field-level validation (empty
	// login, missing relay url, non-positive owner id, and so on).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidSensitiveValue is returned when the sensitive value is empty
	// or fails the configured domain predicate (card-number shape).
	ErrInvalidSensitiveValue = errors.New("invalid sensitive value")

	// ErrWrongPassword is returned when login credentials do not match the
	// stored password digest.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUnauthorized is returned when a bearer credential is missing,
	// malformed, unknown, or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenCreationFailed is returned when a session token cannot be
	// generated or signed.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
