package models

import "time"

// Card represents one vaulted sensitive value and the opaque reference id
// that stands in for it outside the vault process.
//
// A Card is created exactly once, on the first tokenize request for an
// (owner, value) pair not already present, and is never mutated or removed
// afterwards. The ReferenceID is globally unique and never reused.
type Card struct {
	// ReferenceID is the opaque, non-sensitive identifier assigned by the
	// vault at creation time. It is the only part of a Card that may appear
	// in traffic controlled by machine-to-machine callers.
	ReferenceID string `json:"reference_id"`

	// SensitiveValue is the protected payload (e.g. a payment-card number).
	// It must never be serialized into any response returned to a caller.
	SensitiveValue string `json:"-"`

	// OwnerID identifies the user account the value belongs to.
	OwnerID int64 `json:"-"`

	// CreatedAt is the timestamp of the first tokenize call for this value.
	CreatedAt time.Time `json:"created_at"`
}
