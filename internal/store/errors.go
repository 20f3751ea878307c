package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoSessionWasFound is returned when the presented bearer token does not
	// correspond to any stored session.
	ErrNoSessionWasFound = errors.New("no session was found")

	// ErrReferenceNotFound is returned by reverse lookup when the reference id
	// is unknown to the vault.
	ErrReferenceNotFound = errors.New("reference id was not found")

	// ErrEmptySensitiveValue is returned when tokenize is called with an empty
	// sensitive value. Domain-shape validation lives in the service layer; the
	// vault enforces only non-emptiness.
	ErrEmptySensitiveValue = errors.New("sensitive value is empty")
)
