package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("Hello, World!"),
		[]byte("a"),
		[]byte("secret payload"),
		[]byte("multi\nline\ninput\t\r"),
		{0x00, 0x01, 0xfe, 0xff, 0x80},
		bytes.Repeat([]byte{0xab, 0x00, 0x7f}, 64),
	}

	for _, f := range []Format{FormatBase64, FormatBase64URL, FormatBase32, FormatHex} {
		for _, payload := range payloads {
			encoded, err := Encode(payload, f)
			if err != nil {
				t.Fatalf("%s encode failed: %v", f, err)
			}
			decoded, err := Decode(encoded, f)
			if err != nil {
				t.Fatalf("%s decode of %q failed: %v", f, encoded, err)
			}
			if !bytes.Equal(decoded, payload) {
				t.Errorf("%s round-trip mismatch: got %q want %q", f, decoded, payload)
			}
		}
	}
}

func TestRoundTripURL(t *testing.T) {
	// The url codec operates on UTF-8 text, not arbitrary bytes.
	for _, text := range []string{
		"Hello World",
		"a=1&b=two words",
		"naïve café ✓",
		"plain",
	} {
		for _, form := range []bool{false, true} {
			encoded := EncodeURL([]byte(text), form)
			decoded, err := DecodeURL(encoded, form)
			if err != nil {
				t.Fatalf("url decode of %q (form=%v) failed: %v", encoded, form, err)
			}
			if string(decoded) != text {
				t.Errorf("url round-trip mismatch (form=%v): got %q want %q", form, decoded, text)
			}
		}
	}
}

func TestURLModes(t *testing.T) {
	if got := EncodeURL([]byte("a b"), false); got != "a%20b" {
		t.Errorf("plain encode: got %q want %q", got, "a%20b")
	}
	if got := EncodeURL([]byte("a b"), true); got != "a+b" {
		t.Errorf("form encode: got %q want %q", got, "a+b")
	}

	// Plain decode leaves + untouched; form decode converts it to a space.
	plain, err := DecodeURL("a+b", false)
	if err != nil {
		t.Fatalf("plain decode failed: %v", err)
	}
	if string(plain) != "a+b" {
		t.Errorf("plain decode: got %q want %q", plain, "a+b")
	}
	form, err := DecodeURL("a+b", true)
	if err != nil {
		t.Fatalf("form decode failed: %v", err)
	}
	if string(form) != "a b" {
		t.Errorf("form decode: got %q want %q", form, "a b")
	}
}

func TestDecodeStrictness(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    string
		wantErr bool
	}{
		{name: "base64 valid", format: FormatBase64, input: "SGVsbG8gV29ybGQ=", want: "Hello World"},
		{name: "base64 whitespace stripped", format: FormatBase64, input: "SGVs\nbG8g V29y\tbGQ=", want: "Hello World"},
		{name: "base64 bad alphabet", format: FormatBase64, input: "SGVsbG8!V29ybGQ=", wantErr: true},
		{name: "base64 missing padding", format: FormatBase64, input: "SGVsbG8", wantErr: true},
		{name: "base64url padded", format: FormatBase64URL, input: "SGVsbG8_V29ybGQh", want: "Hello?World!"},
		{name: "base64url missing padding ok", format: FormatBase64URL, input: "ZG91YmxlIGxheWVy", want: "double layer"},
		{name: "base64url bad alphabet", format: FormatBase64URL, input: "SGVsbG8+V29ybGQ!", wantErr: true},
		{name: "base32 uppercase", format: FormatBase32, input: "JBSWY3DPEBLW64TMMQ======", want: "Hello World"},
		{name: "base32 lowercase folded", format: FormatBase32, input: "jbswy3dpeblw64tmmq======", want: "Hello World"},
		{name: "base32 bad length", format: FormatBase32, input: "JBSWY", wantErr: true},
		{name: "hex plain", format: FormatHex, input: "48656c6c6f20576f726c64", want: "Hello World"},
		{name: "hex colon separated", format: FormatHex, input: "48:65:6c:6c:6f", want: "Hello"},
		{name: "hex space and dot separated", format: FormatHex, input: "48 65.6c 6c.6f", want: "Hello"},
		{name: "hex odd length", format: FormatHex, input: "48656", wantErr: true},
		{name: "hex bad digit", format: FormatHex, input: "48zz", wantErr: true},
		{name: "url escape", format: FormatURL, input: "Hello%20World", want: "Hello World"},
		{name: "url malformed escape", format: FormatURL, input: "Hello%2", wantErr: true},
		{name: "url invalid utf8 result", format: FormatURL, input: "%ff%fe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(tt.input, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", decoded)
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("error %v does not wrap ErrInvalidInput", err)
				}
				var inv *InvalidInputError
				if !errors.As(err, &inv) {
					t.Errorf("error %v is not an InvalidInputError", err)
				} else if inv.Format != tt.format {
					t.Errorf("error format %s, want %s", inv.Format, tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(decoded) != tt.want {
				t.Errorf("got %q want %q", decoded, tt.want)
			}
		})
	}
}

func TestTryDecode(t *testing.T) {
	if decoded, ok := TryDecode("SGVsbG8gV29ybGQ=", FormatBase64); !ok || string(decoded) != "Hello World" {
		t.Errorf("TryDecode valid input: got (%q, %v)", decoded, ok)
	}
	if decoded, ok := TryDecode("not base64!!", FormatBase64); ok {
		t.Errorf("TryDecode invalid input: got (%q, %v), want absence", decoded, ok)
	}
	if _, ok := TryDecode("anything", Format("rot13")); ok {
		t.Error("TryDecode unknown format should report absence")
	}
}

func TestHexEncodeShape(t *testing.T) {
	encoded, err := Encode([]byte{0xDE, 0xAD, 0xBE, 0xEF}, FormatHex)
	if err != nil {
		t.Fatal(err)
	}
	if encoded != "deadbeef" {
		t.Errorf("hex encode should be lowercase with no separators, got %q", encoded)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"base64", "BASE64", " hex ", "Base32", "url", "base64url"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseFormat("rot13"); err == nil {
		t.Error("ParseFormat should reject unknown names")
	}
}
