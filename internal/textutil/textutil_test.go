package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays whole", "abc", 10, "abc"},
		{"exact stays whole", "abcde", 5, "abcde"},
		{"long gets marker", "abcdefgh", 5, "abcde..."},
		{"zero limit disables", "abcdef", 0, "abcdef"},
		{"multibyte safe", "héllo wörld", 4, "héll..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestSafeBytesPreview(t *testing.T) {
	if got := SafeBytesPreview(nil, 10); got != "" {
		t.Errorf("empty input: got %q", got)
	}
	if got := SafeBytesPreview([]byte("hello"), 10); got != "hello" {
		t.Errorf("text input: got %q", got)
	}
	// Non-UTF-8 falls back to hex.
	if got := SafeBytesPreview([]byte{0xff, 0xfe}, 10); got != "fffe" {
		t.Errorf("binary input: got %q", got)
	}
}

func TestIsPrintableText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"plain text", []byte("Hello, World!"), true},
		{"text with newlines and tabs", []byte("a\tb\nc\r\n"), true},
		{"empty", nil, false},
		{"invalid utf8", []byte{0xff, 0x41, 0x42}, false},
		{"mostly control bytes", []byte("a\x00\x01\x02\x03"), false},
		{"unicode text", []byte("naïve café ✓"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPrintableText(tt.in, 0.80); got != tt.want {
				t.Errorf("IsPrintableText(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
