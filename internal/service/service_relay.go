package service

import (
	"context"
	"strings"

	"github.com/vkarpenko/card-vault/internal/adapter"
	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/store"
	"github.com/vkarpenko/card-vault/models"
)

// relayService performs the detokenizing relay protocol.
//
// The substitution set is resolved once and reused unchanged for both
// directions, so anything detokenized on the way out is exactly what gets
// re-tokenized on the way back. The vault is read-only on this path: a
// failed or cancelled relay call leaves no state behind.
//
// Trust boundary: the M2M credential (checked at the handler) authorizes
// use of the relay; the OwnerID inside the validated payload alone decides
// whose cards are substituted. M2M credentials are not scoped per owner.
type relayService struct {
	vault  store.CardVault
	client adapter.ThirdPartyClient

	logger *logger.Logger
}

// NewRelayService constructs a RelayService over the given vault and
// third-party client.
func NewRelayService(vault store.CardVault, client adapter.ThirdPartyClient, logger *logger.Logger) RelayService {
	return &relayService{
		vault:  vault,
		client: client,
		logger: logger,
	}
}

// Relay implements [RelayService].
//
// Returns:
//   - ErrInvalidDataProvided if url, method, or owner id is missing.
//   - *adapter.UpstreamError untouched if the third-party call fails; the
//     raw response is never substituted or exposed on that path.
func (r *relayService) Relay(ctx context.Context, req models.RelayRequest) (models.RelayResponse, error) {
	log := logger.FromContext(ctx)

	if req.URL == "" || req.Method == "" || req.OwnerID <= 0 {
		log.Error().Str("url", req.URL).Int64("owner_id", req.OwnerID).Msg("invalid relay request")
		return models.RelayResponse{}, ErrInvalidDataProvided
	}

	// One snapshot drives both substitution passes.
	cards := r.vault.Resolve(ctx, req.OwnerID)

	outbound := detokenize(req.Args, cards)

	body, err := r.client.Send(ctx, models.UpstreamCall{
		URL:     req.URL,
		Method:  req.Method,
		Headers: req.Headers,
		Body:    outbound,
	})
	if err != nil {
		return models.RelayResponse{}, err
	}

	log.Debug().
		Int64("owner_id", req.OwnerID).
		Int("cards", len(cards)).
		Msg("relay call completed")

	return models.RelayResponse{Result: retokenize(body, cards)}, nil
}

// detokenize replaces every occurrence of each card's reference id with its
// sensitive value. Replacement order cannot change the result: reference
// ids come from a fixed-length identifier space and never overlap as
// substrings.
func detokenize(text string, cards []models.Card) string {
	for _, card := range cards {
		text = strings.ReplaceAll(text, card.ReferenceID, card.SensitiveValue)
	}

	return text
}

// retokenize applies the exact inverse mapping of detokenize: every
// occurrence of each card's sensitive value becomes its reference id.
func retokenize(text string, cards []models.Card) string {
	for _, card := range cards {
		text = strings.ReplaceAll(text, card.SensitiveValue, card.ReferenceID)
	}

	return text
}
