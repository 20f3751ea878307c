// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, bearer-credential parsing, JWT token generation
// and validation, and reference-id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key used to store the authenticated owner identifier
// in the context. Used together with GetOwnerIDFromContext for type-safe
// retrieval of the owner ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, int64(42))
var OwnerIDCtxKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the owner identifier from the context.
//
// Returns the owner ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(int64)
	return ownerID, ok
}
