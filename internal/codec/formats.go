package codec

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
	"unicode/utf8"
)

// base64Codec implements strict RFC 4648 standard-alphabet Base64.
type base64Codec struct{}

func (base64Codec) Format() Format      { return FormatBase64 }
func (base64Codec) Description() string { return "Standard Base64 (RFC 4648)" }
func (base64Codec) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (base64Codec) Decode(s string) ([]byte, error) {
	cleaned := stripWhitespace(s)
	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, invalidInput(FormatBase64, err.Error())
	}
	return decoded, nil
}

// base64URLCodec implements the URL-safe Base64 variant. Decoding tolerates
// missing padding, matching how tokens are pasted in the wild.
type base64URLCodec struct{}

func (base64URLCodec) Format() Format      { return FormatBase64URL }
func (base64URLCodec) Description() string { return "URL-safe Base64 (JWT-style)" }
func (base64URLCodec) Encode(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

func (base64URLCodec) Decode(s string) ([]byte, error) {
	cleaned := stripWhitespace(s)
	decoded, err := base64.URLEncoding.DecodeString(cleaned)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(cleaned)
		if err != nil {
			return nil, invalidInput(FormatBase64URL, err.Error())
		}
	}
	return decoded, nil
}

// base32Codec implements RFC 4648 Base32, case-insensitive on decode.
type base32Codec struct{}

func (base32Codec) Format() Format      { return FormatBase32 }
func (base32Codec) Description() string { return "Base32 (RFC 4648)" }
func (base32Codec) Encode(data []byte) string {
	return base32.StdEncoding.EncodeToString(data)
}

func (base32Codec) Decode(s string) ([]byte, error) {
	cleaned := strings.ToUpper(stripWhitespace(s))
	decoded, err := base32.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, invalidInput(FormatBase32, err.Error())
	}
	return decoded, nil
}

// hexSeparators are stripped before a hex decode so copy-pasted dumps
// ("de:ad:be:ef", "de ad be ef") still parse.
const hexSeparators = " :.-"

// hexCodec encodes lowercase hex with no separators and decodes hex with
// common separators stripped.
type hexCodec struct{}

func (hexCodec) Format() Format      { return FormatHex }
func (hexCodec) Description() string { return "Hexadecimal" }
func (hexCodec) Encode(data []byte) string {
	return hex.EncodeToString(data)
}

func (hexCodec) Decode(s string) ([]byte, error) {
	cleaned := strings.TrimSpace(s)
	for _, sep := range hexSeparators {
		cleaned = strings.ReplaceAll(cleaned, string(sep), "")
	}
	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, invalidInput(FormatHex, err.Error())
	}
	return decoded, nil
}

// urlCodec implements percent-encoding in plain mode (space becomes %20 and
// literal + survives a decode untouched). Form mode is exposed separately via
// EncodeURL/DecodeURL.
type urlCodec struct{}

func (urlCodec) Format() Format      { return FormatURL }
func (urlCodec) Description() string { return "URL percent-encoding" }
func (urlCodec) Encode(data []byte) string {
	return EncodeURL(data, false)
}

func (urlCodec) Decode(s string) ([]byte, error) {
	return DecodeURL(s, false)
}

// EncodeURL percent-encodes data interpreted as UTF-8 text. In form mode a
// space becomes +; in plain mode it becomes %20.
func EncodeURL(data []byte, form bool) string {
	escaped := url.QueryEscape(string(data))
	if form {
		return escaped
	}
	return strings.ReplaceAll(escaped, "+", "%20")
}

// DecodeURL reverses percent-encoding and returns the UTF-8 bytes of the
// unescaped text. In form mode + is converted back to a space; in plain mode
// it is left alone. Malformed escapes and non-UTF-8 results are rejected.
func DecodeURL(s string, form bool) ([]byte, error) {
	var unescaped string
	var err error
	if form {
		unescaped, err = url.QueryUnescape(s)
	} else {
		unescaped, err = url.PathUnescape(s)
	}
	if err != nil {
		return nil, invalidInput(FormatURL, err.Error())
	}
	if !utf8.ValidString(unescaped) {
		return nil, invalidInput(FormatURL, "unescaped text is not valid UTF-8")
	}
	return []byte(unescaped), nil
}
