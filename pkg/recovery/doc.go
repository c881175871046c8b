// Package recovery issues single-use backup codes for two-factor
// authentication, the fallback credential a user redeems when the
// authenticator device is unavailable.
//
// Codes are two four-character groups joined by a hyphen, drawn from a
// fixed alphabet that excludes visually ambiguous characters (see
// Alphabet). Generation guarantees uniqueness within a batch; the
// enclosing application owns everything after that: storing hashes
// (Hash), single-use check-and-mark semantics (atomically, via Verify
// plus a conditional update), and invalidating leftover codes when a
// fresh batch replaces them.
package recovery
