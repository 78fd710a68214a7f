package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/skillswap/backend/internal/domain/identity"
)

const (
	saltSize   = 16
	keySize    = 32
	iterations = 10000
)

// ErrEmptyPassword is returned when hashing an empty plaintext.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Hasher derives password hashes with PBKDF2-HMAC-SHA256. The encoded form
// is base64(salt || derivedKey) with a 16-byte salt and a 32-byte key.
type Hasher struct{}

var _ identity.PasswordHasher = (*Hasher)(nil)

// NewHasher creates a PBKDF2 hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash derives an encoded hash from the plaintext with a fresh random salt.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plaintext), salt, iterations, keySize, sha256.New)

	encoded := make([]byte, 0, saltSize+keySize)
	encoded = append(encoded, salt...)
	encoded = append(encoded, key...)
	return base64.StdEncoding.EncodeToString(encoded), nil
}

// Verify reports whether the plaintext matches the encoded hash. Any
// malformed encoding fails closed.
func (h *Hasher) Verify(plaintext, encodedHash string) bool {
	if plaintext == "" || encodedHash == "" {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil {
		return false
	}
	if len(decoded) != saltSize+keySize {
		return false
	}
	salt := decoded[:saltSize]
	stored := decoded[saltSize:]
	derived := pbkdf2.Key([]byte(plaintext), salt, iterations, keySize, sha256.New)
	return hmac.Equal(stored, derived)
}
