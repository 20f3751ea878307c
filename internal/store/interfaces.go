package store

import (
	"context"

	"github.com/vkarpenko/card-vault/models"
)

// CardVault owns the mapping between sensitive values and reference ids,
// scoped per owner. It is the sole owner and sole mutator of that state;
// every other component reaches it only through this contract.
type CardVault interface {
	// Tokenize performs an idempotent insert-or-fetch: the first call for an
	// (owner, value) pair creates a Card with a fresh reference id, every
	// later call returns the same id without creating anything. Concurrent
	// calls for the same pair observe a single reference id.
	Tokenize(ctx context.Context, ownerID int64, sensitiveValue string) (string, error)

	// Resolve returns a consistent snapshot of the owner's cards in
	// insertion order. An unknown owner yields an empty slice, not an error.
	Resolve(ctx context.Context, ownerID int64) []models.Card

	// ReverseLookup maps a reference id back to its sensitive value.
	// Returns ErrReferenceNotFound for an unknown id. It exists for cache
	// and debug use; the relay works from Resolve, never from this.
	ReverseLookup(ctx context.Context, referenceID string) (string, error)
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// SessionRepository persists bearer sessions issued at login.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, token string) (models.Session, error)
}
