package base32_test

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/dmitrymomot/twofa/pkg/base32"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  []byte
		want string
	}{
		// RFC 4648 section 10 test vectors
		{name: "Empty input", src: []byte(""), want: ""},
		{name: "Single byte", src: []byte("f"), want: "MY======"},
		{name: "Two bytes", src: []byte("fo"), want: "MZXQ===="},
		{name: "Three bytes", src: []byte("foo"), want: "MZXW6==="},
		{name: "Four bytes", src: []byte("foob"), want: "MZXW6YQ="},
		{name: "Five bytes", src: []byte("fooba"), want: "MZXW6YTB"},
		{name: "Six bytes", src: []byte("foobar"), want: "MZXW6YTBOI======"},
		{name: "Hello", src: []byte("Hello"), want: "JBSWY3DP"},
		{name: "Binary data", src: []byte{0x00, 0xFF, 0x88}, want: "AD7YQ==="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base32.Encode(tt.src))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{name: "Empty input", input: "", want: []byte{}},
		{name: "Padded", input: "MZXW6===", want: []byte("foo")},
		{name: "Unpadded", input: "MZXW6", want: []byte("foo")},
		{name: "Lowercase", input: "mzxw6ytb", want: []byte("fooba")},
		{name: "Mixed case unpadded", input: "JbSwY3dP", want: []byte("Hello")},
		{name: "Excessive padding", input: "MZXW6==========", want: []byte("foo")},
		{name: "Invalid character digit 1", input: "JBSWY3DP1", wantErr: true},
		{name: "Invalid character digit 0", input: "JBSW0", wantErr: true},
		{name: "Padding in the middle", input: "MZ=W6===", wantErr: true},
		{name: "Whitespace", input: "MZXW 6", wantErr: true},
		{name: "Impossible length 1", input: "M", wantErr: true},
		{name: "Impossible length 3", input: "MZX", wantErr: true},
		{name: "Impossible length 6", input: "MZXW6Y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := base32.Decode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, base32.ErrInvalidEncoding)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, size := range []int{1, 2, 3, 4, 5, 19, 20, 32, 63, 128} {
		buf := make([]byte, size)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		encoded := base32.Encode(buf)
		assert.Zero(t, len(encoded)%8, "encoded output must be padded to a multiple of 8")

		decoded, err := base32.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, buf, decoded)

		// Lower-cased and stripped of padding the encoding must still
		// decode to the same bytes.
		relaxed := strings.ToLower(strings.TrimRight(encoded, "="))
		decoded, err = base32.Decode(relaxed)
		require.NoError(t, err)
		assert.Equal(t, buf, decoded)
	}
}
