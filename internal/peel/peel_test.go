package peel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/husk-sh/husk/internal/codec"
	"github.com/husk-sh/husk/internal/detect"
)

func mustEncode(t *testing.T, data []byte, f codec.Format) string {
	t.Helper()
	encoded, err := codec.Encode(data, f)
	require.NoError(t, err)
	return encoded
}

func TestPeelSingleBase64Layer(t *testing.T) {
	encoded := mustEncode(t, []byte("Hello World"), codec.FormatBase64)

	result, err := Peel(encoded, Default())
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Len(t, result.Layers, 1)
	require.Equal(t, codec.FormatBase64, result.Layers[0].Format)
	require.Equal(t, []byte("Hello World"), result.FinalOutput)
}

func TestPeelPlainText(t *testing.T) {
	result, err := Peel("just plain text", Default())
	require.NoError(t, err)

	require.False(t, result.Success)
	require.Empty(t, result.Layers)
	require.Equal(t, []byte("just plain text"), result.FinalOutput)
}

func TestPeelDoubleBase64(t *testing.T) {
	inner := mustEncode(t, []byte("double layer"), codec.FormatBase64)
	outer := mustEncode(t, []byte(inner), codec.FormatBase64)

	result, err := Peel(outer, Default())
	require.NoError(t, err)

	require.True(t, result.Success)
	require.GreaterOrEqual(t, len(result.Layers), 2)
	require.Equal(t, []byte("double layer"), result.FinalOutput)
}

func TestPeelMixedChain(t *testing.T) {
	// Base64 first, then hex on top: peeling sees hex outermost.
	inner := mustEncode(t, []byte("secret payload"), codec.FormatBase64)
	outer := mustEncode(t, []byte(inner), codec.FormatHex)

	result, err := Peel(outer, Default())
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Len(t, result.Layers, 2)
	require.Equal(t, codec.FormatHex, result.Layers[0].Format)
	require.Equal(t, codec.FormatBase64, result.Layers[1].Format)
	require.Equal(t, []byte("secret payload"), result.FinalOutput)
}

func TestPeelDepthsAreMonotonic(t *testing.T) {
	payload := []byte("layer cake")
	text := string(payload)
	for i := 0; i < 4; i++ {
		text = mustEncode(t, []byte(text), codec.FormatBase64)
	}

	result, err := Peel(text, Default())
	require.NoError(t, err)

	require.True(t, result.Success)
	for i, layer := range result.Layers {
		require.Equal(t, i+1, layer.Depth)
	}
	require.Equal(t, payload, result.FinalOutput)
}

func TestPeelRespectsMaxDepth(t *testing.T) {
	text := "deep"
	for i := 0; i < 6; i++ {
		text = mustEncode(t, []byte(text), codec.FormatBase64)
	}

	result, err := Peel(text, Options{MaxDepth: 3})
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Len(t, result.Layers, 3)
}

func TestPeelZeroDepth(t *testing.T) {
	encoded := mustEncode(t, []byte("Hello World"), codec.FormatBase64)

	result, err := Peel(encoded, Options{MaxDepth: 0})
	require.NoError(t, err)

	require.False(t, result.Success)
	require.Empty(t, result.Layers)
	require.Equal(t, []byte(encoded), result.FinalOutput)
}

func TestPeelNegativeDepth(t *testing.T) {
	_, err := Peel("anything", Options{MaxDepth: -1})
	require.ErrorIs(t, err, ErrInvalidDepth)
}

func TestPeelStopsAtBinaryPayload(t *testing.T) {
	// Encoding raw binary: one layer comes off, then the non-UTF-8 output
	// terminates the loop with the blob as final output.
	blob := []byte{0x00, 0xff, 0xfe, 0x80, 0x01, 0xc3}
	encoded := mustEncode(t, blob, codec.FormatBase64)

	result, err := Peel(encoded, Default())
	require.NoError(t, err)

	require.True(t, result.Success)
	require.Len(t, result.Layers, 1)
	require.Equal(t, blob, result.FinalOutput)
}

func TestPeelVerboseRecordsScores(t *testing.T) {
	encoded := mustEncode(t, []byte("Hello World"), codec.FormatBase64)

	verbose, err := Peel(encoded, Options{MaxDepth: DefaultMaxDepth, Verbose: true})
	require.NoError(t, err)
	require.Len(t, verbose.Layers, 1)
	require.Len(t, verbose.Layers[0].Scores, len(codec.Formats()))
	require.GreaterOrEqual(t, verbose.Layers[0].Scores[codec.FormatBase64], detect.ConfidenceThreshold)

	quiet, err := Peel(encoded, Options{MaxDepth: DefaultMaxDepth})
	require.NoError(t, err)
	require.Nil(t, quiet.Layers[0].Scores)
}

func TestPeelPreviewTruncation(t *testing.T) {
	long := strings.Repeat("A", 300) + "QUJD" // stays structurally base64
	encoded := mustEncode(t, []byte(long), codec.FormatBase64)

	result, err := Peel(encoded, Options{MaxDepth: 1, PreviewLength: 72})
	require.NoError(t, err)
	require.Len(t, result.Layers, 1)

	layer := result.Layers[0]
	require.True(t, strings.HasSuffix(layer.InputPreview, "..."))
	require.LessOrEqual(t, len(layer.InputPreview), 72+len("..."))
}

func TestPeelTerminatesWithinMaxDepth(t *testing.T) {
	inputs := []string{
		"SGVsbG8gV29ybGQ=",
		"48656c6c6f20576f726c64",
		"plain",
		"",
		"%41%41%41%41",
	}
	for _, input := range inputs {
		result, err := Peel(input, Default())
		require.NoError(t, err)
		require.LessOrEqual(t, len(result.Layers), DefaultMaxDepth, "input %q", input)
	}
}
