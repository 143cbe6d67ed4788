// Package textutil holds the preview and printability helpers shared by
// detection, peeling, and rendering.
package textutil

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"
)

// DefaultPreviewLength bounds the input/output previews recorded per peel
// layer and printed by the CLI.
const DefaultPreviewLength = 72

// Truncate shortens s to at most n runes of content, appending an ellipsis
// marker when anything was cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// SafeBytesPreview renders bytes for display: as UTF-8 text when valid,
// otherwise as a hex dump. Never fails.
func SafeBytesPreview(data []byte, n int) string {
	if len(data) == 0 {
		return ""
	}
	if utf8.Valid(data) {
		return Truncate(string(data), n)
	}
	return Truncate(hex.EncodeToString(data), n)
}

// IsPrintableText reports whether data decodes as UTF-8 and at least the
// given fraction of its runes are displayable (printable glyphs plus
// newline, carriage return, and tab).
func IsPrintableText(data []byte, threshold float64) bool {
	if len(data) == 0 {
		return false
	}
	if !utf8.Valid(data) {
		return false
	}

	text := string(data)
	total := 0
	printable := 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	if total == 0 {
		return false
	}
	return float64(printable)/float64(total) >= threshold
}
