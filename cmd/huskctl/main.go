// huskctl peels stacked text encodings: it encodes, decodes, detects, and
// strips Base64, Base64URL, Base32, hex, and percent-encoding layers.
package main

import (
	"errors"
	"fmt"
	"os"
)

const version = "0.4.1"

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usage *usageError
		if errors.As(err, &usage) {
			return 2
		}
		return 1
	}
	return 0
}

// usageError marks caller-input problems (missing input, unknown format,
// bad configuration) so they exit with code 2 instead of 1.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
