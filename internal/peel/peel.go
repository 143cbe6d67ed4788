// Package peel strips stacked text encodings from a payload layer by layer.
//
// Peeling is greedy and local: each round trusts the single best detection
// and commits to it, never backtracking into alternative branches. Ambiguity
// is resolved once per layer by the detector's ranking.
package peel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/husk-sh/husk/internal/codec"
	"github.com/husk-sh/husk/internal/detect"
	"github.com/husk-sh/husk/internal/textutil"
)

// DefaultMaxDepth bounds the peel loop when the caller does not choose a
// limit. It is the sole cancellation mechanism; there is no wall-clock
// timeout in the core.
const DefaultMaxDepth = 25

// ErrInvalidDepth reports a negative max depth, rejected before the loop
// starts.
var ErrInvalidDepth = errors.New("peel: max depth must not be negative")

// Layer records one stripped encoding layer. Depth starts at 1 and increases
// without gaps. Scores is populated only for verbose peels.
type Layer struct {
	Depth         int                      `json:"depth"`
	Format        codec.Format             `json:"format"`
	Confidence    float64                  `json:"confidence"`
	InputPreview  string                   `json:"input_preview"`
	OutputPreview string                   `json:"output_preview"`
	Scores        map[codec.Format]float64 `json:"scores,omitempty"`
}

// Result is the outcome of a peel. Success is true iff at least one layer
// was stripped; zero layers is a normal terminal state, not a failure.
type Result struct {
	Layers      []Layer `json:"layers"`
	FinalOutput []byte  `json:"final_output"`
	Success     bool    `json:"success"`
}

// Options configures a single peel invocation.
type Options struct {
	// MaxDepth caps the number of layers stripped. Zero peels nothing;
	// negative is a configuration error.
	MaxDepth int

	// Verbose attaches the full per-format score table to each layer.
	Verbose bool

	// PreviewLength bounds the recorded previews; zero means the default.
	PreviewLength int
}

// Default returns the standard peel options.
func Default() Options {
	return Options{MaxDepth: DefaultMaxDepth, PreviewLength: textutil.DefaultPreviewLength}
}

// Peel iteratively detects and strips encoding layers from text until no
// format clears the confidence threshold, a decode stops producing UTF-8
// text, the decoded output trims to nothing, or MaxDepth is exhausted.
func Peel(text string, opts Options) (Result, error) {
	if opts.MaxDepth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDepth, opts.MaxDepth)
	}
	previewLen := opts.PreviewLength
	if previewLen <= 0 {
		previewLen = textutil.DefaultPreviewLength
	}

	currentText := strings.TrimSpace(text)
	var currentBytes []byte
	var layers []Layer

	for depth := 1; depth <= opts.MaxDepth; depth++ {
		det, ok := detect.DetectBest(currentText)
		if !ok {
			break
		}
		// DetectBest already filters at the threshold; re-asserted here as
		// an explicit loop invariant.
		if det.Confidence < detect.ConfidenceThreshold {
			break
		}

		decoded := det.Decoded
		if decoded == nil {
			decoded, _ = codec.TryDecode(currentText, det.Format)
		}
		if decoded == nil {
			break
		}

		var scores map[codec.Format]float64
		if opts.Verbose {
			scores = detect.ScoreAll(currentText)
		}

		layers = append(layers, Layer{
			Depth:         depth,
			Format:        det.Format,
			Confidence:    det.Confidence,
			InputPreview:  textutil.Truncate(currentText, previewLen),
			OutputPreview: textutil.SafeBytesPreview(decoded, previewLen),
			Scores:        scores,
		})

		currentBytes = decoded

		// Non-UTF-8 output means we likely reached the real payload. The
		// layer above is still recorded and becomes the final output.
		if !utf8.Valid(decoded) {
			break
		}

		currentText = strings.TrimSpace(string(decoded))
		if currentText == "" {
			break
		}
	}

	if currentBytes == nil {
		// Nothing peeled: hand back the trimmed input, best-effort UTF-8.
		final := []byte(strings.ToValidUTF8(currentText, string(utf8.RuneError)))
		return Result{Layers: nil, FinalOutput: final, Success: false}, nil
	}

	return Result{Layers: layers, FinalOutput: currentBytes, Success: len(layers) > 0}, nil
}
