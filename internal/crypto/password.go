// Package crypto provides password hashing for user accounts.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordHasher derives and verifies argon2id password digests with a
// per-password random salt.
type PasswordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Hash derives an argon2id digest from password using a freshly generated
// 16-byte salt and returns it in the encoded form "base64(salt)$base64(key)".
// Returns an error if the OS CSPRNG read fails.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	encoded := base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(key)
	return encoded, nil
}

// Verify re-derives the digest for password using the salt embedded in
// encoded and compares the two keys in constant time. A malformed encoded
// value verifies as false, never as an error.
func (h *PasswordHasher) Verify(password, encoded string) bool {
	saltPart, keyPart, found := strings.Cut(encoded, "$")
	if !found {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltPart)
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(keyPart)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1
}
