// Package base32 implements the RFC 4648 Base32 encoding used to carry
// binary OTP secrets as typable text.
//
// Unlike encoding/base32 from the standard library, Decode is padding
// agnostic: it accepts strict padded output, the unpadded form most
// authenticator apps emit, and lower-case input, and reports every
// malformed input with the single sentinel ErrInvalidEncoding so
// callers can treat "not base32" as one error class.
//
// Decode is the exact left inverse of Encode for any byte sequence.
package base32
