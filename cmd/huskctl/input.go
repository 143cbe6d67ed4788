package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Input resolution priority: --file, then the positional argument, then
// piped stdin. No input at all is a usage error.

func resolveInputBytes(args []string, file string) ([]byte, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, usagef("read input file: %v", err)
		}
		return data, nil
	}

	if len(args) > 0 {
		return []byte(args[0]), nil
	}

	if stdinPiped() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	return nil, usagef("no input provided: pass an argument, use --file, or pipe stdin")
}

func resolveInputText(args []string, file string) (string, error) {
	data, err := resolveInputBytes(args, file)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func stdinPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
