package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	encoded, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	assert.True(t, hasher.Verify("correct horse battery staple", encoded))
	assert.False(t, hasher.Verify("wrong password", encoded))
}

func TestPasswordHasher_SaltsAreUnique(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_VerifyMalformedEncoded(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "no separator", encoded: "c2FsdA"},
		{name: "invalid salt base64", encoded: "!!!$c2FsdA"},
		{name: "invalid key base64", encoded: "c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("anything", tt.encoded))
		})
	}
}
