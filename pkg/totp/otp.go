package totp

import (
	"time"

	"github.com/dmitrymomot/twofa/pkg/hotp"
)

const (
	DefaultDigits    = 6         // Standard 6-digit TOTP codes
	DefaultPeriod    = 30        // 30-second validity window (RFC 6238 standard)
	DefaultAlgorithm = hotp.SHA1 // HMAC-SHA1 (what authenticator apps implement)
)

// Params tunes code derivation. The zero value yields the RFC 6238 /
// authenticator-app defaults: 30-second period, 6 digits, HMAC-SHA1.
type Params struct {
	Period    int            // Code validity period in seconds
	Digits    int            // Number of digits in generated codes
	Algorithm hotp.Algorithm // HMAC algorithm
}

// WithDefaults returns a copy with standard defaults applied to
// zero-valued fields.
func (p Params) WithDefaults() Params {
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	return p
}

func (p Params) validate() error {
	if p.Period < 1 {
		return ErrInvalidPeriod
	}
	return nil
}

// counter maps a wall-clock instant onto an RFC 6238 time-step counter
// (T0 is fixed at the Unix epoch).
func (p Params) counter(at time.Time) (uint64, error) {
	ts := at.Unix()
	if ts < 0 {
		return 0, ErrInvalidTimestamp
	}
	return uint64(ts) / uint64(p.Period), nil
}

// Generate computes the code valid at the given instant. Time is always
// an explicit argument: the package never samples a clock, which keeps
// generation a pure function and lets callers apply their own time
// source policy.
func Generate(secret []byte, at time.Time, p Params) (string, error) {
	p = p.WithDefaults()
	if err := p.validate(); err != nil {
		return "", err
	}
	c, err := p.counter(at)
	if err != nil {
		return "", err
	}
	return hotp.Generate(secret, c, hotp.Options{Digits: p.Digits, Algorithm: p.Algorithm})
}

// Verify reports whether code is valid at the given instant, accepting
// codes up to window full periods away in either direction to absorb
// clock skew. A malformed code (wrong length, non-digits) is an error;
// a well-formed code that simply does not match is (false, nil).
// Window steps that would reach before the epoch are skipped, never
// wrapped.
func Verify(secret []byte, code string, at time.Time, window int, p Params) (bool, error) {
	if window < 0 {
		return false, ErrInvalidWindow
	}
	p = p.WithDefaults()
	if err := p.validate(); err != nil {
		return false, err
	}
	c, err := p.counter(at)
	if err != nil {
		return false, err
	}
	_, ok, err := hotp.Verify(secret, code, c, uint64(window), hotp.Options{Digits: p.Digits, Algorithm: p.Algorithm})
	if err != nil {
		return false, err
	}
	return ok, nil
}
