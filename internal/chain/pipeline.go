// Package chain applies multi-step encoding pipelines and manages the
// recipe store that persists them.
package chain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/husk-sh/husk/internal/codec"
)

// Pipeline is an ordered list of encoding steps. Encoding applies each
// format in order; decoding walks the steps in reverse with strict decodes.
type Pipeline struct {
	Steps []codec.Format `json:"steps"`
}

// Parse builds a pipeline from a comma-separated step list such as
// "base64,hex".
func Parse(spec string) (Pipeline, error) {
	parts := strings.Split(spec, ",")
	steps := make([]codec.Format, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := codec.ParseFormat(part)
		if err != nil {
			return Pipeline{}, err
		}
		steps = append(steps, f)
	}
	if len(steps) == 0 {
		return Pipeline{}, fmt.Errorf("pipeline has no steps")
	}
	return Pipeline{Steps: steps}, nil
}

// String renders the pipeline as its parseable step list.
func (p Pipeline) String() string {
	names := make([]string, len(p.Steps))
	for i, f := range p.Steps {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

// Encode runs the pipeline forward: the encoded text of step N becomes the
// UTF-8 input bytes of step N+1.
func (p Pipeline) Encode(data []byte) (string, error) {
	if len(p.Steps) == 0 {
		return "", fmt.Errorf("pipeline has no steps")
	}
	current := data
	var out string
	for i, f := range p.Steps {
		encoded, err := codec.Encode(current, f)
		if err != nil {
			return "", fmt.Errorf("step %d (%s): %w", i+1, f, err)
		}
		out = encoded
		current = []byte(encoded)
	}
	return out, nil
}

// Decode reverses the pipeline with strict decodes in reverse step order.
// Intermediate outputs must stay UTF-8 text to feed the next decode.
func (p Pipeline) Decode(s string) ([]byte, error) {
	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("pipeline has no steps")
	}
	current := []byte(s)
	for i := len(p.Steps) - 1; i >= 0; i-- {
		f := p.Steps[i]
		if !utf8.Valid(current) {
			return nil, fmt.Errorf("step %d (%s): intermediate output is not UTF-8 text", i+1, f)
		}
		decoded, err := codec.Decode(string(current), f)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, f, err)
		}
		current = decoded
	}
	return current, nil
}
