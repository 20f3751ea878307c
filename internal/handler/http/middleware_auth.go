package http

import (
	"context"
	"net/http"

	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/utils"
	"github.com/vkarpenko/card-vault/models"
)

// auth is an HTTP middleware that enforces session-based authentication on
// the user surface.
//
// It hands the raw "Authorization" header to
// [service.AuthService.AuthenticateUser], which extracts the bearer token
// and resolves it against the session store. On success the authenticated
// owner's ID is stored in the request context under [utils.OwnerIDCtxKey]
// before delegating to the next handler.
//
// Any failure (absent or malformed header, unknown session, expired
// session) is rejected with HTTP 401 and the uniform
// {"message":"Unauthorized"} payload.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		ownerID, err := h.services.AuthService.AuthenticateUser(ctx, r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("user authentication failed")
			utils.WriteJSON(w, models.ErrorResponse{Message: msgUnauthorized}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated owner's ID in the context so that
		// downstream handlers can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.OwnerIDCtxKey, ownerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
