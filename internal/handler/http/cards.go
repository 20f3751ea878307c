package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/service"
	"github.com/vkarpenko/card-vault/internal/utils"
	"github.com/vkarpenko/card-vault/models"
)

// tokenizeCard handles POST /api/cards. The owner id comes from the
// authenticated session placed in the context by the auth middleware; the
// body carries only the sensitive value. The response contains nothing but
// the assigned reference id.
func (h *Handler) tokenizeCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no owner id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	var req models.TokenizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	referenceID, err := h.services.CardService.Tokenize(ctx, ownerID, req.SensitiveValue)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSensitiveValue):
			log.Err(err).Msg("sensitive value failed validation")
			http.Error(w, "invalid sensitive value", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during tokenization")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.TokenizeResponse{ReferenceID: referenceID}, http.StatusCreated)
}
