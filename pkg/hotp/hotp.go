package hotp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"
	"math"
)

const (
	DefaultDigits    = 6    // Standard code length expected by authenticator apps
	DefaultAlgorithm = SHA1 // RFC 4226 baseline HMAC algorithm

	// maxDigits is bounded by the 31-bit truncated value: 2^31-1 has ten
	// decimal digits, so anything longer would only add leading zeros.
	maxDigits = 10
)

// Algorithm selects the HMAC hash used for code generation. RFC 6238
// permits SHA-1, SHA-256 and SHA-512; most authenticator apps only
// implement SHA-1.
type Algorithm string

const (
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

func (a Algorithm) hash() (func() hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	default:
		return nil, ErrInvalidAlgorithm
	}
}

// Options tunes code generation. The zero value means 6 digits with
// HMAC-SHA1, the defaults the authenticator ecosystem expects.
type Options struct {
	Digits    int       // Number of decimal digits in generated codes
	Algorithm Algorithm // HMAC hash variant
}

func (o Options) withDefaults() Options {
	if o.Digits == 0 {
		o.Digits = DefaultDigits
	}
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	return o
}

func (o Options) validate() error {
	if o.Digits < 1 || o.Digits > maxDigits {
		return ErrInvalidDigits
	}
	if _, err := o.Algorithm.hash(); err != nil {
		return err
	}
	return nil
}

// Generate computes the RFC 4226 code for the given counter. The result
// is a zero-padded decimal string of exactly Options.Digits characters.
// Generation is a pure function of its inputs.
func Generate(secret []byte, counter uint64, opts Options) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return "", err
	}

	// Counter goes over the wire as 8 bytes big-endian (RFC 4226 §5.1).
	var counterBytes [8]byte
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xFF)
		counter >>= 8
	}

	newHash, _ := opts.Algorithm.hash()
	mac := hmac.New(newHash, secret)
	mac.Write(counterBytes[:])
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): the low nibble of the last
	// byte selects a 4-byte window, whose top bit is masked off.
	offset := sum[len(sum)-1] & 0x0F
	value := (int(sum[offset]&0x7F) << 24) |
		(int(sum[offset+1]) << 16) |
		(int(sum[offset+2]) << 8) |
		int(sum[offset+3])

	value %= int(math.Pow10(opts.Digits))

	return fmt.Sprintf("%0*d", opts.Digits, value), nil
}

// Verify checks code against every counter in [counter-window,
// counter+window] and reports the offset that matched, letting callers
// resynchronize a drifted counter. Offsets that would take the counter
// below zero are skipped. A well-formed code that matches nothing is
// not an error: ok is simply false.
//
// Every candidate in the window is evaluated and compared in constant
// time, so response timing reveals neither the matching offset nor how
// close a guess was.
func Verify(secret []byte, code string, counter uint64, window uint64, opts Options) (int, bool, error) {
	if len(secret) == 0 {
		return 0, false, ErrEmptySecret
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return 0, false, err
	}
	// Format checking is not secret: code length and charset are public
	// parameters of the scheme.
	if len(code) != opts.Digits {
		return 0, false, ErrInvalidCodeFormat
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return 0, false, ErrInvalidCodeFormat
		}
	}

	matched := 0
	offset := 0
	for k := -int(window); k <= int(window); k++ {
		c := counter
		if k < 0 {
			if uint64(-k) > c {
				continue
			}
			c -= uint64(-k)
		} else {
			c += uint64(k)
		}

		candidate, err := Generate(secret, c, opts)
		if err != nil {
			return 0, false, err
		}

		eq := subtle.ConstantTimeCompare([]byte(code), []byte(candidate))
		first := eq &^ matched
		offset = subtle.ConstantTimeSelect(first, k, offset)
		matched |= eq
	}

	return offset, matched == 1, nil
}
