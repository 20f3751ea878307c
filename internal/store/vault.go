package store

import (
	"context"
	"sync"
	"time"

	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/models"
)

// ReferenceIDGenerator produces opaque reference ids for new cards.
// Implementations must draw ids from a fixed-length, collision-resistant
// space so that no generated id is a substring of another.
type ReferenceIDGenerator interface {
	Generate() string
}

// cardVault is the in-memory implementation of [CardVault].
//
// Cards live for the process lifetime: append-only, no update, no delete.
// Deduplication is per owner: the same value tokenized by two owners yields
// two distinct reference ids, so reference-id reuse can never reveal to one
// tenant that another tenant holds the same value.
//
// Locking: the owner map and the reverse index are guarded by mu; each
// owner's card set carries its own mutex that serializes the check-then-insert
// region of Tokenize. Tokenize calls for different owners never contend.
// The vault-level lock is never held while acquiring a set lock, so the two
// levels cannot deadlock.
type cardVault struct {
	ids ReferenceIDGenerator

	mu     sync.RWMutex
	owners map[int64]*ownerCardSet
	refs   map[string]string // referenceID -> sensitiveValue

	logger *logger.Logger
}

// ownerCardSet is one owner's cards in insertion order plus the
// value-to-reference dedup index for that owner.
type ownerCardSet struct {
	mu      sync.Mutex
	cards   []models.Card
	byValue map[string]string // sensitiveValue -> referenceID
}

// NewCardVault constructs an empty in-memory [CardVault].
func NewCardVault(ids ReferenceIDGenerator, logger *logger.Logger) CardVault {
	logger.Debug().Msg("card vault created")
	return &cardVault{
		ids:    ids,
		owners: make(map[int64]*ownerCardSet),
		refs:   make(map[string]string),
		logger: logger,
	}
}

// Tokenize implements [CardVault]. The lookup and the insert happen under the
// owner set's mutex, so two racing calls for the same unseen value cannot
// both observe "not found" and create two cards.
func (v *cardVault) Tokenize(ctx context.Context, ownerID int64, sensitiveValue string) (string, error) {
	if sensitiveValue == "" {
		return "", ErrEmptySensitiveValue
	}

	set := v.ownerSet(ownerID)

	set.mu.Lock()
	defer set.mu.Unlock()

	if referenceID, ok := set.byValue[sensitiveValue]; ok {
		return referenceID, nil
	}

	referenceID := v.ids.Generate()
	set.cards = append(set.cards, models.Card{
		ReferenceID:    referenceID,
		SensitiveValue: sensitiveValue,
		OwnerID:        ownerID,
		CreatedAt:      time.Now(),
	})
	set.byValue[sensitiveValue] = referenceID

	v.mu.Lock()
	v.refs[referenceID] = sensitiveValue
	v.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Int64("owner_id", ownerID).
		Str("reference_id", referenceID).
		Msg("card created")

	return referenceID, nil
}

// Resolve implements [CardVault]. The returned slice is a copy taken under
// the set lock: a consistent snapshot with no partial append visible, safe
// for the caller to hold across its own suspension points.
func (v *cardVault) Resolve(ctx context.Context, ownerID int64) []models.Card {
	v.mu.RLock()
	set, ok := v.owners[ownerID]
	v.mu.RUnlock()

	if !ok {
		return []models.Card{}
	}

	set.mu.Lock()
	defer set.mu.Unlock()

	cards := make([]models.Card, len(set.cards))
	copy(cards, set.cards)

	return cards
}

// ReverseLookup implements [CardVault].
func (v *cardVault) ReverseLookup(ctx context.Context, referenceID string) (string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	sensitiveValue, ok := v.refs[referenceID]
	if !ok {
		return "", ErrReferenceNotFound
	}

	return sensitiveValue, nil
}

// ownerSet returns the owner's card set, creating it on first use.
func (v *cardVault) ownerSet(ownerID int64) *ownerCardSet {
	v.mu.RLock()
	set, ok := v.owners[ownerID]
	v.mu.RUnlock()
	if ok {
		return set
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// re-check: another goroutine may have created the set in between
	if set, ok = v.owners[ownerID]; ok {
		return set
	}

	set = &ownerCardSet{byValue: make(map[string]string)}
	v.owners[ownerID] = set

	return set
}
