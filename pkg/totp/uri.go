package totp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/twofa/pkg/base32"
	"github.com/dmitrymomot/twofa/pkg/hotp"
)

// URIParams describes one enrollment for provisioning-URI generation.
// The URI format follows the Key Uri Format specification:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
type URIParams struct {
	Secret      []byte         // Raw secret bytes (required)
	AccountName string         // User identifier like email (required)
	Issuer      string         // Service name displayed in authenticator apps (required)
	Algorithm   hotp.Algorithm // HMAC algorithm (optional, defaults to SHA1)
	Digits      int            // Number of digits in generated codes (optional, defaults to 6)
	Period      int            // Code validity period in seconds (optional, defaults to 30)

	// PadSecret keeps the '=' padding on the Base32 secret parameter.
	// Most authenticator apps (Google Authenticator included) expect the
	// padding stripped, so the default is to strip it.
	PadSecret bool
}

// Validate ensures all required provisioning parameters are present.
// Empty label or issuer would produce an ambiguous, unscannable URI, so
// they fail here rather than being silently defaulted.
func (p URIParams) Validate() error {
	if len(p.Secret) == 0 {
		return ErrMissingSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

func (p URIParams) withDefaults() URIParams {
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	return p
}

// ProvisioningURI builds the otpauth:// key URI that transfers the
// secret and its parameters into an authenticator app, typically via QR
// code. Pure string construction: no I/O, no stored state, recomputed
// on demand.
func ProvisioningURI(params URIParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	params = params.withDefaults()

	secret := base32.Encode(params.Secret)
	if !params.PadSecret {
		secret = EncodeSecretKey(params.Secret)
	}

	label := fmt.Sprintf("%s:%s",
		escapeLabelPart(params.Issuer),
		escapeLabelPart(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", string(params.Algorithm))
	query.Set("digits", fmt.Sprintf("%d", params.Digits))
	query.Set("period", fmt.Sprintf("%d", params.Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// escapeLabelPart percent-encodes one side of the issuer:account label.
// PathEscape leaves ':' alone, but an unescaped colon inside either
// part would be ambiguous against the label separator, so it is encoded
// explicitly.
func escapeLabelPart(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), ":", "%3A")
}
