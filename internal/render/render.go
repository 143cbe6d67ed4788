// Package render turns detection and peel results into terminal or
// machine-readable output. Decorated output goes to stderr so stdout stays
// clean for piping payloads into the next tool.
package render

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/husk-sh/husk/internal/codec"
	"github.com/husk-sh/husk/internal/detect"
	"github.com/husk-sh/husk/internal/peel"
	"github.com/husk-sh/husk/internal/textutil"
)

// Mode selects the output encoding for detect and peel results.
type Mode string

const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// ParseMode maps a user-supplied -o value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeText, ModeJSON, ModeYAML:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown output mode %q (supported: text, json, yaml)", s)
}

var (
	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorRed    = color.New(color.FgRed, color.Bold)
	colorCyan   = color.New(color.FgCyan)
	colorFaint  = color.New(color.Faint)
)

func confidenceColor(conf float64) *color.Color {
	switch {
	case conf >= 0.9:
		return colorGreen
	case conf >= 0.7:
		return colorYellow
	default:
		return colorRed
	}
}

// Interactive reports whether stdout is a terminal. When it is not, the
// renderer emits raw payloads only, keeping pipelines clean.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Renderer writes results to the configured streams.
type Renderer struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool
}

// New builds a renderer bound to the process streams.
func New() *Renderer {
	return &Renderer{Stdout: os.Stdout, Stderr: os.Stderr, Interactive: Interactive()}
}

// Encoded prints an encode/chain result.
func (r *Renderer) Encoded(result string, label string) {
	if r.Interactive && label != "" {
		colorFaint.Fprintf(r.Stderr, "[%s]\n", label)
	}
	fmt.Fprintln(r.Stdout, result)
}

// Decoded prints raw decoded bytes to stdout untouched; interactive
// sessions get a trailing newline for readability.
func (r *Renderer) Decoded(data []byte) {
	r.Stdout.Write(data)
	if r.Interactive && (len(data) == 0 || data[len(data)-1] != '\n') {
		fmt.Fprintln(r.Stdout)
	}
}

// Detection prints ranked detection results, optionally with the full score
// table underneath.
func (r *Renderer) Detection(results []detect.Result, scores map[codec.Format]float64, showScores bool) {
	if !r.Interactive {
		for _, res := range results {
			fmt.Fprintf(r.Stdout, "%s\t%.2f\n", res.Format, res.Confidence)
		}
		return
	}

	if len(results) == 0 {
		colorRed.Fprintln(r.Stderr, "No confident match")
	}
	for i, res := range results {
		c := confidenceColor(res.Confidence)
		fmt.Fprintf(r.Stderr, "%d. %-10s ", i+1, res.Format)
		c.Fprintf(r.Stderr, "%3.0f%%", res.Confidence*100)
		if res.Decoded != nil {
			colorFaint.Fprintf(r.Stderr, "  %s", textutil.SafeBytesPreview(res.Decoded, textutil.DefaultPreviewLength))
		}
		fmt.Fprintln(r.Stderr)
	}

	if showScores {
		colorCyan.Fprintln(r.Stderr, "\nScores:")
		for _, f := range codec.Formats() {
			fmt.Fprintf(r.Stderr, "  %-10s %.2f\n", f, scores[f])
		}
	}

	if best := bestDecoded(results); best != nil {
		r.Decoded(best)
	}
}

// Peel prints a peel trace and the final payload.
func (r *Renderer) Peel(res peel.Result) {
	if r.Interactive {
		if len(res.Layers) == 0 {
			colorYellow.Fprintln(r.Stderr, "Nothing to peel")
		}
		for _, layer := range res.Layers {
			c := confidenceColor(layer.Confidence)
			fmt.Fprintf(r.Stderr, "layer %d: %-10s ", layer.Depth, layer.Format)
			c.Fprintf(r.Stderr, "%3.0f%%", layer.Confidence*100)
			fmt.Fprintln(r.Stderr)
			colorFaint.Fprintf(r.Stderr, "  in:  %s\n", layer.InputPreview)
			colorFaint.Fprintf(r.Stderr, "  out: %s\n", layer.OutputPreview)
			if layer.Scores != nil {
				for _, f := range codec.Formats() {
					fmt.Fprintf(r.Stderr, "    %-10s %.2f\n", f, layer.Scores[f])
				}
			}
		}
	}
	r.Decoded(res.FinalOutput)
}

func bestDecoded(results []detect.Result) []byte {
	if len(results) == 0 {
		return nil
	}
	return results[0].Decoded
}

// DetectionReport is the machine-readable shape of a detection result.
// Decoded bytes that are not UTF-8 are hex-encoded and flagged.
type DetectionReport struct {
	Format       string  `json:"format" yaml:"format"`
	Confidence   float64 `json:"confidence" yaml:"confidence"`
	Decoded      string  `json:"decoded,omitempty" yaml:"decoded,omitempty"`
	DecodedIsHex bool    `json:"decoded_is_hex,omitempty" yaml:"decoded_is_hex,omitempty"`
}

// PeelLayerReport is the machine-readable shape of one peel layer.
type PeelLayerReport struct {
	Depth         int                `json:"depth" yaml:"depth"`
	Format        string             `json:"format" yaml:"format"`
	Confidence    float64            `json:"confidence" yaml:"confidence"`
	InputPreview  string             `json:"input_preview" yaml:"input_preview"`
	OutputPreview string             `json:"output_preview" yaml:"output_preview"`
	Scores        map[string]float64 `json:"scores,omitempty" yaml:"scores,omitempty"`
}

// PeelReport is the machine-readable shape of a peel result.
type PeelReport struct {
	Layers       []PeelLayerReport `json:"layers" yaml:"layers"`
	FinalOutput  string            `json:"final_output" yaml:"final_output"`
	OutputIsHex  bool              `json:"output_is_hex,omitempty" yaml:"output_is_hex,omitempty"`
	Success      bool              `json:"success" yaml:"success"`
	LayersPeeled int               `json:"layers_peeled" yaml:"layers_peeled"`
}

// DetectionReports converts detection results for marshalling.
func DetectionReports(results []detect.Result) []DetectionReport {
	reports := make([]DetectionReport, 0, len(results))
	for _, res := range results {
		decoded, isHex := byteField(res.Decoded)
		reports = append(reports, DetectionReport{
			Format:       string(res.Format),
			Confidence:   res.Confidence,
			Decoded:      decoded,
			DecodedIsHex: isHex,
		})
	}
	return reports
}

// PeelReportOf converts a peel result for marshalling.
func PeelReportOf(res peel.Result) PeelReport {
	layers := make([]PeelLayerReport, 0, len(res.Layers))
	for _, layer := range res.Layers {
		var scores map[string]float64
		if layer.Scores != nil {
			scores = make(map[string]float64, len(layer.Scores))
			for f, s := range layer.Scores {
				scores[string(f)] = s
			}
		}
		layers = append(layers, PeelLayerReport{
			Depth:         layer.Depth,
			Format:        string(layer.Format),
			Confidence:    layer.Confidence,
			InputPreview:  layer.InputPreview,
			OutputPreview: layer.OutputPreview,
			Scores:        scores,
		})
	}

	final, isHex := byteField(res.FinalOutput)
	return PeelReport{
		Layers:       layers,
		FinalOutput:  final,
		OutputIsHex:  isHex,
		Success:      res.Success,
		LayersPeeled: len(res.Layers),
	}
}

func byteField(data []byte) (string, bool) {
	if data == nil {
		return "", false
	}
	if utf8.Valid(data) {
		return string(data), false
	}
	return fmt.Sprintf("%x", data), true
}
