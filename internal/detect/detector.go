// Package detect identifies which encoding scheme a string of text was
// produced with, ranking candidate formats by heuristic confidence.
package detect

import (
	"math"
	"sort"

	"github.com/husk-sh/husk/internal/codec"
)

// Result is one detected candidate format. Decoded is nil only when the
// strict decode failed; a Result that cleared the confidence threshold has
// already decoded successfully at least once.
type Result struct {
	Format     codec.Format `json:"format"`
	Confidence float64      `json:"confidence"`
	Decoded    []byte       `json:"decoded,omitempty"`
}

// ScoreAll runs every format scorer independently and returns the full
// table, including zeros for disqualified formats.
func ScoreAll(text string) map[codec.Format]float64 {
	table := make(map[codec.Format]float64, len(codec.Formats()))
	for f, score := range scorers() {
		table[f] = score(text)
	}
	return table
}

// Detect scores text against every format and returns the candidates at or
// above ConfidenceThreshold, sorted by descending confidence. Ties keep the
// codec declaration order (base64, base64url, base32, hex, url), which makes
// DetectBest deterministic on crafted inputs that score two formats equally.
// Confidences are rounded to two decimal places.
func Detect(text string) []Result {
	table := ScoreAll(text)

	var results []Result
	for _, f := range codec.Formats() {
		confidence := table[f]
		if confidence < ConfidenceThreshold {
			continue
		}
		decoded, _ := codec.TryDecode(text, f)
		results = append(results, Result{
			Format:     f,
			Confidence: math.Round(confidence*100) / 100,
			Decoded:    decoded,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// DetectBest returns the highest-confidence candidate, if any.
func DetectBest(text string) (Result, bool) {
	results := Detect(text)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}
