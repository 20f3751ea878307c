package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkarpenko/card-vault/internal/adapter"
	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/service"
	"github.com/vkarpenko/card-vault/internal/utils"
	"github.com/vkarpenko/card-vault/models"
)

// relay handles POST /api/relay.
//
// The M2M credential is checked before the body is even read: an
// unauthorized caller learns nothing about the payload schema and the third
// party is never contacted. The credential authorizes relay use only; the
// owner whose cards are substituted is taken from the validated payload.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.services.AuthService.AuthenticateM2M(r.Header.Get("Authorization")) {
		log.Error().Msg("m2m authentication failed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	var req models.RelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.RelayService.Relay(ctx, req)
	if err != nil {
		var upstreamErr *adapter.UpstreamError
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid relay request")
			utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidRequest}, http.StatusBadRequest)
			return
		case errors.As(err, &upstreamErr):
			log.Err(err).Int("upstream_status", upstreamErr.Status).Msg("upstream call failed")
			utils.WriteJSON(w, models.ErrorResponse{Message: upstreamErr.Error()}, http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during relay call")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
