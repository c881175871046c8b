package totp_test

import (
	"testing"

	"github.com/dmitrymomot/twofa/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// No t.Parallel: LoadConfig caches once per process and this test
	// mutates the environment.
	encoded, err := totp.GenerateEncodedEncryptionKey()
	require.NoError(t, err)
	t.Setenv("TWOFA_ENCRYPTION_KEY", encoded)

	cfg, err := totp.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, encoded, cfg.EncryptionKey)

	key, err := totp.GetEncryptionKey(cfg)
	require.NoError(t, err)
	assert.Len(t, key, totp.AESKeySize)

	// Subsequent loads return the cached config.
	again, err := totp.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
