package detect

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/husk-sh/husk/internal/codec"
	"github.com/husk-sh/husk/internal/textutil"
)

var (
	base64Pattern    = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	base64URLPattern = regexp.MustCompile(`^[A-Za-z0-9_\-=]+$`)
	base32Pattern    = regexp.MustCompile(`^[A-Z2-7=]+$`)
	hexPattern       = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	percentPattern   = regexp.MustCompile(`%[0-9a-fA-F]{2}`)
)

// scorer maps a candidate string to a confidence in [0, 1]. Every scorer
// applies cheap structural rejections first, then additive heuristics, then
// the strict-decode gate: no format scores above zero unless its bytes are
// actually producible.
type scorer func(text string) float64

// scorers lists one scorer per format in codec declaration order.
func scorers() map[codec.Format]scorer {
	return map[codec.Format]scorer{
		codec.FormatBase64:    scoreBase64,
		codec.FormatBase64URL: scoreBase64URL,
		codec.FormatBase32:    scoreBase32,
		codec.FormatHex:       scoreHex,
		codec.FormatURL:       scoreURL,
	}
}

func scoreBase64(text string) float64 {
	stripped := stripWhitespace(text)
	if len(stripped) < MinInputLength {
		return 0
	}
	if !base64Pattern.MatchString(stripped) {
		return 0
	}
	if len(stripped)%4 != 0 {
		return 0
	}

	score := weightB64Base
	content := strings.TrimRight(stripped, "=")

	if padding := len(stripped) - len(content); padding <= 2 {
		score += weightB64ValidPadding
	}

	// Strong signal for standard Base64.
	if strings.ContainsAny(stripped, "+/") {
		score += weightB64SpecialChars
	}

	hasUpper := containsUpper(content)
	hasLower := containsLower(content)

	switch {
	case hasUpper && hasLower:
		score += weightB64MixedCase
	case !strings.ContainsAny(stripped, "+/=") && !hasUpper:
		// A lowercase-only unpadded alphanumeric string is plausibly hex.
		score -= weightB64NoSignalPenalty
	}

	if len(stripped) >= 8 {
		score += weightLongerInput
	}

	decoded, ok := codec.TryDecode(stripped, codec.FormatBase64)
	if !ok {
		return 0
	}
	score += weightDecodeSuccess
	if textutil.IsPrintableText(decoded, PrintableRatioThreshold) {
		score += weightPrintableResult
	}

	return clamp01(score)
}

func scoreBase64URL(text string) float64 {
	stripped := stripWhitespace(text)
	if len(stripped) < MinInputLength {
		return 0
	}
	if !base64URLPattern.MatchString(stripped) {
		return 0
	}

	score := weightB64URLBase

	hasURLChars := strings.ContainsAny(stripped, "-_")
	hasStdChars := strings.ContainsAny(stripped, "+/")

	// Without the URL-safe specials there is nothing distinguishing this
	// from standard Base64, so require them.
	if hasURLChars && !hasStdChars {
		score += weightB64URLSafeChars
	} else if !hasURLChars {
		return 0
	}

	decoded, ok := codec.TryDecode(stripped, codec.FormatBase64URL)
	if !ok {
		return 0
	}
	score += weightDecodeSuccess
	if textutil.IsPrintableText(decoded, PrintableRatioThreshold) {
		score += weightPrintableResult
	}

	return clamp01(score)
}

// base32ValidPaddings are the pad lengths RFC 4648 section 6 can produce.
var base32ValidPaddings = map[int]bool{0: true, 1: true, 3: true, 4: true, 6: true}

func scoreBase32(text string) float64 {
	stripped := strings.ToUpper(stripWhitespace(text))
	if len(stripped) < MinInputLength {
		return 0
	}
	if !base32Pattern.MatchString(stripped) {
		return 0
	}
	if len(stripped)%8 != 0 {
		return 0
	}

	score := weightB32Base

	padding := len(stripped) - len(strings.TrimRight(stripped, "="))
	if base32ValidPaddings[padding] {
		score += weightB32ValidPadding
	}

	// Base32 is usually pasted uppercase already.
	if text == strings.ToUpper(text) {
		score += weightB32Uppercase
	}

	decoded, ok := codec.TryDecode(stripped, codec.FormatBase32)
	if !ok {
		return 0
	}
	score += weightDecodeSuccess
	if textutil.IsPrintableText(decoded, PrintableRatioThreshold) {
		score += weightPrintableResult
	}

	return clamp01(score)
}

func scoreHex(text string) float64 {
	stripped := strings.TrimSpace(text)
	if len(stripped) < MinInputLength {
		return 0
	}

	hexOnly := stripped
	for _, sep := range " :.-" {
		hexOnly = strings.ReplaceAll(hexOnly, string(sep), "")
	}

	if hexOnly == "" {
		return 0
	}
	if !hexPattern.MatchString(hexOnly) {
		return 0
	}
	if len(hexOnly)%2 != 0 {
		return 0
	}

	score := weightHexBase

	if strings.ContainsAny(stripped, " :.-") {
		score += weightHexSeparatorPresent
	}

	if strings.ContainsAny(hexOnly, "abcdefABCDEF") {
		score += weightHexAlphaChars
	} else {
		// Pure digits are equally valid as a plain number.
		score -= weightHexNoAlphaPenalty
	}

	if hexOnly == strings.ToLower(hexOnly) || hexOnly == strings.ToUpper(hexOnly) {
		score += weightHexConsistentCase
	}

	if len(hexOnly) >= 8 {
		score += weightLongerInput
	}

	decoded, ok := codec.TryDecode(stripped, codec.FormatHex)
	if !ok {
		return 0
	}
	score += weightHexDecodeSuccess
	if textutil.IsPrintableText(decoded, PrintableRatioThreshold) {
		score += weightPrintableResult
	}

	return clamp01(score)
}

func scoreURL(text string) float64 {
	if len(text) < MinInputLength {
		return 0
	}

	matches := percentPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0
	}

	// Each %XX sequence occupies three characters of the input.
	ratio := float64(len(matches)*3) / float64(len(text))
	score := weightURLBase + min(ratio*weightURLRatioMultiplier, weightURLRatioCap)

	decoded, ok := codec.TryDecode(text, codec.FormatURL)
	if !ok {
		return 0
	}
	if string(decoded) != text {
		score += weightURLDecodeChanged
	}

	return clamp01(score)
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func containsUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func containsLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
