package hotp

import "errors"

var (
	ErrEmptySecret       = errors.New("secret must not be empty")
	ErrInvalidDigits     = errors.New("digits must be between 1 and 10")
	ErrInvalidAlgorithm  = errors.New("unsupported HMAC algorithm")
	ErrInvalidCodeFormat = errors.New("code must be exactly the configured number of decimal digits")
)
