package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal encodes v in the requested machine-readable mode.
func Marshal(v any, mode Mode) ([]byte, error) {
	switch mode {
	case ModeJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case ModeYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("mode %s is not machine-readable", mode)
}
