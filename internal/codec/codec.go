// Package codec provides the bidirectional encode/decode primitives for
// every text-encoding format husk recognizes.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Format identifies a supported encoding scheme.
type Format string

const (
	FormatBase64    Format = "base64"
	FormatBase64URL Format = "base64url"
	FormatBase32    Format = "base32"
	FormatHex       Format = "hex"
	FormatURL       Format = "url"
)

// Formats returns every supported format in declaration order. The order is
// load-bearing: detection uses it as the deterministic tie-break when two
// formats score identically.
func Formats() []Format {
	return []Format{FormatBase64, FormatBase64URL, FormatBase32, FormatHex, FormatURL}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (supported: base64, base64url, base32, hex, url)", name)
}

// ErrInvalidInput is the sentinel wrapped by every decode failure caused by
// malformed input: bad alphabet, bad length or padding, or text that does not
// unescape to valid UTF-8. It is the only class of error TryDecode swallows.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a strict decode rejecting its input.
type InvalidInputError struct {
	Format Format
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s decode: %s", e.Format, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func invalidInput(f Format, reason string) error {
	return &InvalidInputError{Format: f, Reason: reason}
}

// Encode renders data in the given format. Encoding never fails for a known
// format; the error reports unknown formats only.
func Encode(data []byte, f Format) (string, error) {
	c, ok := Lookup(f)
	if !ok {
		return "", fmt.Errorf("unknown format: %s", f)
	}
	return c.Encode(data), nil
}

// Decode strictly decodes s as the given format. Malformed input yields an
// error wrapping ErrInvalidInput.
func Decode(s string, f Format) ([]byte, error) {
	c, ok := Lookup(f)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", f)
	}
	return c.Decode(s)
}

// TryDecode is the silent probing primitive used by detection and peeling.
// It converts invalid-input failures into a plain absence and never panics.
// Failures that are not invalid-input (an unregistered format) also report
// absence; probing only ever runs over registered formats.
func TryDecode(s string, f Format) ([]byte, bool) {
	out, err := Decode(s, f)
	if err != nil {
		return nil, false
	}
	return out, true
}

// stripWhitespace removes every whitespace rune, mirroring how candidates
// are cleaned before alphabet checks and strict decodes.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
