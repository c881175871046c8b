// Package qrcode renders QR codes for two-factor enrollment, either as
// raw PNG bytes or as a data-URI string that can be embedded directly
// into HTML pages.
//
// It is a thin wrapper around github.com/skip2/go-qrcode with input
// validation and an Enrollment helper that goes straight from
// totp.URIParams to a scannable image. Errors are package-level
// sentinels usable with errors.Is.
package qrcode
