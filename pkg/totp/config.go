package totp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

type Config struct {
	EncryptionKey string `env:"TWOFA_ENCRYPTION_KEY,required"` // Base64-encoded AES-256 key for secrets at rest
}

// LoadConfig reads the configuration from the environment once per
// process and caches it. The TWOFA_ENCRYPTION_KEY variable must hold a
// base64-encoded 32-byte key; use GenerateEncodedEncryptionKey (or the
// cmd utility) to mint one.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		var c Config
		if err = env.Parse(&c); err != nil {
			return
		}
		if c.EncryptionKey == "" {
			err = ErrEncryptionKeyNotSet
			return
		}
		cfg = c
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
