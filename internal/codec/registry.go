package codec

import (
	"fmt"
	"sort"
	"sync"
)

// Codec is one bidirectional encoding scheme. Implementations are pure:
// Encode never fails, Decode is strict and rejects malformed input.
type Codec interface {
	// Format returns the format tag this codec serves.
	Format() Format

	// Description returns a human-readable summary.
	Description() string

	// Encode renders raw bytes as encoded text.
	Encode(data []byte) string

	// Decode strictly parses encoded text back to bytes.
	Decode(s string) ([]byte, error)
}

var (
	registry   = make(map[Format]Codec)
	registryMu sync.RWMutex
)

// Register adds a codec to the global registry.
func Register(c Codec) error {
	if c == nil {
		return fmt.Errorf("cannot register nil codec")
	}
	f := c.Format()
	if f == "" {
		return fmt.Errorf("codec format cannot be empty")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[f]; exists {
		return fmt.Errorf("codec %s is already registered", f)
	}
	registry[f] = c
	return nil
}

// Lookup retrieves the codec for a format.
func Lookup(f Format) (Codec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, exists := registry[f]
	return c, exists
}

// List returns all registered codecs sorted by format name for consistent
// ordering.
func List() []Codec {
	registryMu.RLock()
	defer registryMu.RUnlock()

	codecs := make([]Codec, 0, len(registry))
	for _, c := range registry {
		codecs = append(codecs, c)
	}
	sort.Slice(codecs, func(i, j int) bool {
		return codecs[i].Format() < codecs[j].Format()
	})
	return codecs
}

func init() {
	for _, c := range []Codec{
		base64Codec{},
		base64URLCodec{},
		base32Codec{},
		hexCodec{},
		urlCodec{},
	} {
		if err := Register(c); err != nil {
			panic(err)
		}
	}
}
