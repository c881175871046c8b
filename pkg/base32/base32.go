package base32

import (
	"strings"
)

// Alphabet is the standard Base32 alphabet defined by RFC 4648.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// decodeMap maps an ASCII byte to its 5-bit value, or 0xFF for bytes
// outside the alphabet. Built once at init.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = 0xFF
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// Encode encodes src to its Base32 representation, padded with '=' to a
// multiple of 8 characters. Encoding never fails; an empty input yields
// an empty string.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(((len(src) + 4) / 5) * 8)

	var buf uint32
	var bits int
	for _, b := range src {
		buf = buf<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(Alphabet[(buf>>bits)&0x1F])
		}
	}
	if bits > 0 {
		sb.WriteByte(Alphabet[(buf<<(5-bits))&0x1F])
	}

	out := sb.String()
	if pad := len(out) % 8; pad != 0 {
		out += strings.Repeat("=", 8-pad)
	}
	return out
}

// Decode decodes a Base32 string back to bytes. Input is
// case-insensitive and any amount of trailing '=' padding is accepted,
// so both strict RFC 4648 output and the unpadded form used by
// authenticator apps decode identically. Characters outside the
// alphabet, '=' anywhere but the tail, and lengths that no byte
// sequence can encode to all fail with ErrInvalidEncoding.
func Decode(s string) ([]byte, error) {
	s = strings.ToUpper(strings.TrimRight(s, "="))
	if s == "" {
		return []byte{}, nil
	}

	// A 5-bit group count of 1, 3 or 6 mod 8 leaves more than four
	// dangling bits, which no encoder output can produce.
	switch len(s) % 8 {
	case 1, 3, 6:
		return nil, ErrInvalidEncoding
	}

	dst := make([]byte, 0, len(s)*5/8)
	var buf uint32
	var bits int
	for i := 0; i < len(s); i++ {
		v := decodeMap[s[i]]
		if v == 0xFF {
			return nil, ErrInvalidEncoding
		}
		buf = buf<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst = append(dst, byte(buf>>bits))
		}
	}

	return dst, nil
}
