package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

const lz4Name = "lz4"

// LZ4 compresses the output of an inner codec with the lz4 frame format.
type LZ4 struct {
	inner Codec
}

// NewLZ4 wraps inner. A nil inner uses Default.
func NewLZ4(inner Codec) *LZ4 {
	if inner == nil {
		inner = Default
	}
	return &LZ4{inner: inner}
}

// Marshal encodes v with the inner codec and compresses the result.
func (l *LZ4) Marshal(v any) ([]byte, error) {
	b, err := l.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(b); err != nil {
		return nil, fmt.Errorf("lz4 encode: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (l *LZ4) Unmarshal(data []byte, v any) error {
	b, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("lz4 decode: %w", err)
	}
	return l.inner.Unmarshal(b, v)
}

// Name returns "lz4+<inner>".
func (l *LZ4) Name() string { return lz4Name + "+" + l.inner.Name() }
