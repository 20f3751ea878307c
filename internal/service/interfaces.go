package service

import (
	"context"

	"github.com/vkarpenko/card-vault/models"
)

// AuthService covers both caller classes: users authenticated through a
// session lookup and machine-to-machine callers authenticated against a
// static credential set. Both checks share one bearer-extraction step and
// are pure reads against externally owned stores.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.Session, error)

	// AuthenticateUser resolves a raw Authorization header value to the
	// owner id of a live session. Returns ErrUnauthorized on a missing or
	// malformed credential, an unknown session, or an expired one.
	AuthenticateUser(ctx context.Context, authorizationHeader string) (int64, error)

	// AuthenticateM2M reports whether the Authorization header carries a
	// credential from the static machine-to-machine set.
	AuthenticateM2M(authorizationHeader string) bool
}

// CardService validates a sensitive value and tokenizes it for an owner.
type CardService interface {
	Tokenize(ctx context.Context, ownerID int64, sensitiveValue string) (string, error)
}

// RelayService performs the bidirectional substitution protocol around one
// outbound third-party call.
type RelayService interface {
	Relay(ctx context.Context, req models.RelayRequest) (models.RelayResponse, error)
}
