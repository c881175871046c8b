package totp

import "errors"

var (
	ErrInvalidPeriod    = errors.New("period must be a positive number of seconds")
	ErrInvalidWindow    = errors.New("verification window must not be negative")
	ErrInvalidTimestamp = errors.New("timestamp must not be before the unix epoch")

	ErrMissingSecret      = errors.New("missing secret")
	ErrInvalidSecret      = errors.New("invalid secret")
	ErrMissingAccountName = errors.New("missing account name")
	ErrMissingIssuer      = errors.New("missing issuer")

	ErrFailedToGenerateSecret = errors.New("failed to generate TOTP secret")

	ErrFailedToEncryptSecret         = errors.New("failed to encrypt TOTP secret")
	ErrFailedToDecryptSecret         = errors.New("failed to decrypt TOTP secret")
	ErrInvalidCipherTooShort         = errors.New("cipher text too short")
	ErrFailedToDeriveKey             = errors.New("failed to derive account encryption key")
	ErrFailedToGenerateEncryptionKey = errors.New("failed to generate encryption key")
	ErrFailedToLoadEncryptionKey     = errors.New("failed to load encryption key")
	ErrInvalidEncryptionKeyLength    = errors.New("invalid encryption key length")
	ErrEncryptionKeyNotSet           = errors.New("2FA encryption key not set")
)
