package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarpenko/card-vault/internal/logger"
)

func TestCardTokenize_Success(t *testing.T) {
	vault := &mockVault{
		tokenizeFn: func(_ context.Context, ownerID int64, value string) (string, error) {
			assert.Equal(t, int64(1), ownerID)
			assert.Equal(t, "4111-1111-1111-1111", value)
			return "ref-1", nil
		},
	}

	svc := NewCardService(vault, nil, logger.Nop())

	ref, err := svc.Tokenize(context.Background(), 1, "4111-1111-1111-1111")
	require.NoError(t, err)
	assert.Equal(t, "ref-1", ref)
}

func TestCardTokenize_InvalidValue(t *testing.T) {
	called := false
	vault := &mockVault{
		tokenizeFn: func(_ context.Context, _ int64, _ string) (string, error) {
			called = true
			return "", nil
		},
	}

	svc := NewCardService(vault, nil, logger.Nop())

	for _, value := range []string{"", "not-a-card", "4111-1111-1111-1112"} {
		_, err := svc.Tokenize(context.Background(), 1, value)
		assert.ErrorIs(t, err, ErrInvalidSensitiveValue, "value %q", value)
	}

	assert.False(t, called, "the vault must not see values that fail validation")
}

func TestCardTokenize_CustomPredicate(t *testing.T) {
	vault := &mockVault{
		tokenizeFn: func(_ context.Context, _ int64, _ string) (string, error) {
			return "ref-2", nil
		},
	}

	acceptAll := func(string) bool { return true }
	svc := NewCardService(vault, acceptAll, logger.Nop())

	ref, err := svc.Tokenize(context.Background(), 1, "anything goes")
	require.NoError(t, err)
	assert.Equal(t, "ref-2", ref)
}
