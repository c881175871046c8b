// Package hotp implements the HMAC-based One-Time Password algorithm
// from RFC 4226.
//
// Generate and Verify are pure functions of their arguments: the
// package keeps no counter state. The caller (normally via pkg/totp,
// or directly for counter-based tokens) owns counter persistence and
// advancement. Verify scans a symmetric window around the expected
// counter and returns the offset that matched so a caller can detect
// and correct counter drift; comparison is constant time across the
// whole window.
package hotp
