package totp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrymomot/twofa/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, secret, totp.SecretSize)

	other, err := totp.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestGenerateSecretFrom(t *testing.T) {
	t.Parallel()

	t.Run("Deterministic source yields deterministic secret", func(t *testing.T) {
		t.Parallel()
		src := bytes.Repeat([]byte{0xAB}, totp.SecretSize)
		secret, err := totp.GenerateSecretFrom(bytes.NewReader(src))
		require.NoError(t, err)
		assert.Equal(t, src, secret)
	})

	t.Run("Short source fails", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateSecretFrom(bytes.NewReader([]byte{1, 2, 3}))
		assert.ErrorIs(t, err, totp.ErrFailedToGenerateSecret)
	})
}

func TestSecretKeyRoundTrip(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	key := totp.EncodeSecretKey(secret)
	assert.NotContains(t, key, "=")

	decoded, err := totp.DecodeSecretKey(key)
	require.NoError(t, err)
	assert.Equal(t, secret, decoded)

	// User-typed variations decode to the same bytes.
	decoded, err = totp.DecodeSecretKey("  " + strings.ToLower(key) + " ")
	require.NoError(t, err)
	assert.Equal(t, secret, decoded)
}

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()
	key, err := totp.GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	decoded, err := totp.DecodeSecretKey(key)
	require.NoError(t, err)
	assert.Len(t, decoded, totp.SecretSize)
}

func TestDecodeSecretKeyValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "Empty", key: "", wantErr: totp.ErrMissingSecret},
		{name: "Whitespace only", key: "   ", wantErr: totp.ErrMissingSecret},
		{name: "Not base32", key: "invalid-base32!@#$", wantErr: totp.ErrInvalidSecret},
		{name: "Digit outside alphabet", key: "JBSWY3DP1", wantErr: totp.ErrInvalidSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := totp.DecodeSecretKey(tt.key)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
