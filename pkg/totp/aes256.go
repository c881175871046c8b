package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	AESKeySize = 32 // Required key size for AES-256 (256 bits / 8 = 32 bytes)

	// keyDerivationInfo provides HKDF domain separation so keys derived
	// here can never collide with keys derived for other purposes from
	// the same master key.
	keyDerivationInfo = "twofa-secret-encryption-v1"
)

// EncryptSecret encrypts a raw TOTP secret with AES-256-GCM for
// at-rest storage. Returns nonce-prefixed ciphertext as a
// base64-encoded string.
func EncryptSecret(secret, key []byte) (string, error) {
	if len(key) != AESKeySize {
		return "", errors.Join(ErrFailedToEncryptSecret, ErrInvalidEncryptionKeyLength)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	cipherText := aesGCM.Seal(nonce, nonce, secret, nil)
	return base64.StdEncoding.EncodeToString(cipherText), nil
}

// DecryptSecret reverses EncryptSecret, returning the raw secret bytes.
func DecryptSecret(cipherTextBase64 string, key []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, errors.Join(ErrFailedToDecryptSecret, ErrInvalidEncryptionKeyLength)
	}

	cipherText, err := base64.StdEncoding.DecodeString(cipherTextBase64)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(cipherText) < nonceSize {
		return nil, errors.Join(ErrFailedToDecryptSecret, ErrInvalidCipherTooShort)
	}
	nonce, cipherText := cipherText[:nonceSize], cipherText[nonceSize:]

	secret, err := aesGCM.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecryptSecret, err)
	}

	return secret, nil
}

// DeriveAccountKey derives a per-account encryption key from the master
// key using HKDF-SHA256, with the account identifier as salt. Storing
// each user's secret under its own derived key limits the blast radius
// of a leaked ciphertext batch to single-key brute force.
func DeriveAccountKey(masterKey []byte, accountID string) ([]byte, error) {
	if len(masterKey) != AESKeySize {
		return nil, errors.Join(ErrFailedToDeriveKey, ErrInvalidEncryptionKeyLength)
	}
	if accountID == "" {
		return nil, errors.Join(ErrFailedToDeriveKey, ErrMissingAccountName)
	}

	reader := hkdf.New(sha256.New, masterKey, []byte(accountID), []byte(keyDerivationInfo))
	key := make([]byte, AESKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Join(ErrFailedToDeriveKey, err)
	}
	return key, nil
}

// GenerateEncryptionKey creates a new random 32-byte key suitable for
// AES-256 encryption.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateEncryptionKey, err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey creates a new random AES-256 key and
// returns it base64-encoded, the form the configuration expects.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// GetEncryptionKey decodes the encryption key from the configuration.
// The key must be a 32-byte base64-encoded string.
func GetEncryptionKey(cfg Config) ([]byte, error) {
	if cfg.EncryptionKey == "" {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, ErrEncryptionKeyNotSet)
	}

	key, err := base64.StdEncoding.DecodeString(cfg.EncryptionKey)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, err)
	}

	if len(key) != AESKeySize {
		return nil, errors.Join(ErrFailedToLoadEncryptionKey, ErrInvalidEncryptionKeyLength)
	}

	return key, nil
}
