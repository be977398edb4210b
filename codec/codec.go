// Package codec centralizes encoding of vectors and data frames for
// persistence collaborators.
//
// The core owns no file format. A codec turns the in-memory documents produced
// by vecframe into bytes and back; choosing where those bytes go is the
// caller's concern.
package codec

import (
	"fmt"
	"strings"
	"sync"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Compressed codecs are named "<compression>+<inner>", e.g. "zstd+go-json".
// zstd codecs are shared per name, so repeated lookups reuse one encoder
// and decoder pair.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	}
	if inner, ok := strings.CutPrefix(name, lz4Name+"+"); ok {
		c, ok := ByName(inner)
		if !ok {
			return nil, false
		}
		return NewLZ4(c), true
	}
	if inner, ok := strings.CutPrefix(name, zstdName+"+"); ok {
		if z, ok := zstdCodecs.Load(name); ok {
			return z.(*Zstd), true
		}
		c, ok := ByName(inner)
		if !ok {
			return nil, false
		}
		z, err := NewZstd(c)
		if err != nil {
			return nil, false
		}
		actual, loaded := zstdCodecs.LoadOrStore(name, z)
		if loaded {
			_ = z.Close()
		}
		return actual.(*Zstd), true
	}
	return nil, false
}

var zstdCodecs sync.Map // name -> *Zstd

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
