package totp

import (
	"crypto/rand"
	"errors"
	"io"
	"strings"

	"github.com/dmitrymomot/twofa/pkg/base32"
)

// SecretSize is the generated secret length in bytes. 160 bits is the
// RFC 4226 recommendation for HMAC-SHA1 keys.
const SecretSize = 20

// GenerateSecret returns a fresh random secret from crypto/rand.
func GenerateSecret() ([]byte, error) {
	return GenerateSecretFrom(rand.Reader)
}

// GenerateSecretFrom draws a secret from the given random source. The
// source must be cryptographically secure; the parameter exists so
// tests can substitute a deterministic (but still CSPRNG-shaped)
// reader, not to permit weak generators in production.
func GenerateSecretFrom(r io.Reader) ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := io.ReadFull(r, secret); err != nil {
		return nil, errors.Join(ErrFailedToGenerateSecret, err)
	}
	return secret, nil
}

// GenerateSecretKey returns a fresh random secret in its Base32 text
// form, padding stripped, ready for storage or manual entry.
func GenerateSecretKey() (string, error) {
	secret, err := GenerateSecret()
	if err != nil {
		return "", err
	}
	return EncodeSecretKey(secret), nil
}

// EncodeSecretKey renders raw secret bytes as unpadded Base32 text.
func EncodeSecretKey(secret []byte) string {
	return strings.TrimRight(base32.Encode(secret), "=")
}

// DecodeSecretKey parses a Base32 text secret back into raw bytes. It
// tolerates surrounding whitespace, lower case and optional padding,
// the variations users produce when typing a stored key.
func DecodeSecretKey(key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrMissingSecret
	}
	secret, err := base32.Decode(key)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return secret, nil
}
