package recovery

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
	"regexp"
	"strings"
)

const (
	// Alphabet is the fixed set codes are drawn from: upper-case letters
	// and digits minus the visually ambiguous I, L, O, 0 and 1, so codes
	// survive being read over the phone or copied from paper.
	Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	// DefaultCount is the batch size a typical enrollment issues.
	DefaultCount = 10

	groupLen = 4
	codeLen  = groupLen*2 + 1 // two groups and the hyphen
)

// CodeRegex matches a well-formed backup code.
var CodeRegex = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// Generate creates count single-use backup codes from crypto/rand,
// formatted as XXXX-XXXX. Codes are guaranteed unique within the batch.
func Generate(count int) ([]string, error) {
	return GenerateFrom(rand.Reader, count)
}

// GenerateFrom draws codes from the given random source. The source
// must be cryptographically secure; the parameter exists so tests can
// inject a deterministic reader, not to permit weak generators in
// production.
//
// Duplicates inside a batch are actively resampled. The resample budget
// is bounded so a degenerate (constant) source fails instead of
// spinning forever.
func GenerateFrom(r io.Reader, count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	codes := make([]string, 0, count)
	seen := make(map[string]struct{}, count)

	// With a 31-symbol alphabet and 8 symbols per code the space is
	// ~8.5e11, so collisions are vanishingly rare; the budget only
	// guards against a broken source.
	budget := count * 10
	for len(codes) < count {
		if budget--; budget < 0 {
			return nil, ErrFailedToGenerate
		}
		code, err := drawCode(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return codes, nil
}

// drawCode samples one XXXX-XXXX code. Symbols are drawn by rejection
// sampling so every alphabet character is equally likely.
func drawCode(r io.Reader) (string, error) {
	// Largest multiple of len(Alphabet) that fits in a byte; bytes at or
	// above it would bias the modulo and are redrawn.
	limit := byte(256 - 256%len(Alphabet))

	var sb strings.Builder
	sb.Grow(codeLen)

	var buf [1]byte
	for written := 0; written < groupLen*2; {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return "", errors.Join(ErrFailedToGenerate, err)
		}
		if buf[0] >= limit {
			continue
		}
		sb.WriteByte(Alphabet[int(buf[0])%len(Alphabet)])
		written++
		if written == groupLen {
			sb.WriteByte('-')
		}
	}

	return sb.String(), nil
}

// Hash creates a SHA-256 hash for secure storage of backup codes. The
// external store should persist hashes, never plaintext codes.
func Hash(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Verify compares a presented code against a stored hash in constant
// time, so comparison timing reveals nothing about where a guess
// diverges. Marking a matched code as used, atomically, is the store's
// job.
func Verify(code, hashedCode string) bool {
	computed := Hash(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}
