package base32

import "errors"

var (
	// ErrInvalidEncoding is returned by Decode for any malformed input:
	// characters outside the RFC 4648 alphabet, misplaced padding, or a
	// length no encoder output can have.
	ErrInvalidEncoding = errors.New("invalid base32 encoding")
)
