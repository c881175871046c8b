// Package totp provides Time-based One-Time Passwords (RFC 6238) plus
// the supporting pieces a two-factor enrollment flow needs: secret
// generation, provisioning URIs for authenticator apps, and AES-256-GCM
// helpers for persisting secrets safely.
//
// The package is deliberately stateless. Every operation takes the
// secret and the current time as explicit arguments; nothing is cached,
// no clock is sampled, and no storage is touched. Persistence of
// secrets, single-use bookkeeping for recovery codes, rate limiting and
// audit logging belong to the calling application.
//
// # Architecture
//
//   - otp.go    – code generation and verification; time-step counters
//     are derived from a caller-supplied time.Time and delegated to
//     pkg/hotp, which implements the underlying RFC 4226 algorithm.
//   - secret.go – random secret creation (crypto/rand, 160 bits) and
//     the Base32 text form used for storage and manual entry.
//   - uri.go    – otpauth:// key URI construction for onboarding to
//     Google Authenticator, 1Password and compatible apps.
//   - aes256.go – AES-256-GCM encryption of secrets at rest, including
//     HKDF-based per-account key derivation from a master key.
//   - config.go – env-based loading of the master encryption key
//     (TWOFA_ENCRYPTION_KEY, base64, 32 bytes).
//
// # Usage
//
// The minimal happy path for enrolling a user:
//
//	secret, _ := totp.GenerateSecret()
//
//	// Persist the secret encrypted in your datastore.
//	cfg, _ := totp.LoadConfig()
//	master, _ := totp.GetEncryptionKey(cfg)
//	key, _ := totp.DeriveAccountKey(master, "user-42")
//	encSecret, _ := totp.EncryptSecret(secret, key)
//
//	// Display the bootstrap URI/QR code to the user.
//	uri, _ := totp.ProvisioningURI(totp.URIParams{
//	    Secret:      secret,
//	    AccountName: "alice@example.com",
//	    Issuer:      "Acme",
//	})
//
//	// Later – validate an OTP provided by the user.
//	ok, _ := totp.Verify(secret, "123456", time.Now(), 1, totp.Params{})
//
// # Error Handling
//
// Operations return sentinel errors combined with errors.Join; inspect
// them with errors.Is against ErrInvalidSecret, ErrMissingIssuer,
// ErrFailedToDecryptSecret and friends. A code that is well formed but
// wrong is not an error: Verify returns (false, nil).
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
