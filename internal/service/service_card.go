package service

import (
	"context"
	"fmt"

	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/internal/store"
)

// cardService validates sensitive values and tokenizes them through the
// vault. Validation is a pluggable predicate so deployments vaulting other
// value shapes can swap it without touching the vault.
type cardService struct {
	vault    store.CardVault
	validate ValuePredicate

	logger *logger.Logger
}

// NewCardService constructs a CardService over the given vault. A nil
// predicate falls back to [CardNumberShape].
func NewCardService(vault store.CardVault, validate ValuePredicate, logger *logger.Logger) CardService {
	if validate == nil {
		validate = CardNumberShape
	}

	return &cardService{
		vault:    vault,
		validate: validate,
		logger:   logger,
	}
}

// Tokenize validates the value and performs the idempotent insert-or-fetch.
// Repeated calls for the same (owner, value) pair return the same reference
// id and create no new card.
//
// Returns ErrInvalidSensitiveValue if the value is empty or fails the
// predicate.
func (c *cardService) Tokenize(ctx context.Context, ownerID int64, sensitiveValue string) (string, error) {
	log := logger.FromContext(ctx)

	if sensitiveValue == "" || !c.validate(sensitiveValue) {
		log.Error().Int64("owner_id", ownerID).Msg("sensitive value failed validation")
		return "", ErrInvalidSensitiveValue
	}

	referenceID, err := c.vault.Tokenize(ctx, ownerID, sensitiveValue)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("vault tokenize failed")
		return "", fmt.Errorf("vault tokenize failed: %w", err)
	}

	return referenceID, nil
}
