package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

const zstdName = "zstd"

// Zstd compresses the output of an inner codec with zstd.
type Zstd struct {
	inner Codec
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

// NewZstd wraps inner. A nil inner uses Default.
//
// The codec holds a zstd encoder and decoder; call Close when it is no
// longer needed.
func NewZstd(inner Codec) (*Zstd, error) {
	if inner == nil {
		inner = Default
	}
	// nil writer/reader are valid for EncodeAll/DecodeAll use
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Zstd{inner: inner, enc: enc, dec: dec}, nil
}

// MustZstd is like NewZstd but panics on error.
func MustZstd(inner Codec) *Zstd {
	z, err := NewZstd(inner)
	if err != nil {
		panic(err)
	}
	return z
}

// Close releases the encoder and decoder. The codec must not be used after.
func (z *Zstd) Close() error {
	z.dec.Close()
	return z.enc.Close()
}

// Marshal encodes v with the inner codec and compresses the result.
func (z *Zstd) Marshal(v any) ([]byte, error) {
	b, err := z.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return z.enc.EncodeAll(b, nil), nil
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (z *Zstd) Unmarshal(data []byte, v any) error {
	b, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("zstd decode: %w", err)
	}
	return z.inner.Unmarshal(b, v)
}

// Name returns "zstd+<inner>".
func (z *Zstd) Name() string { return zstdName + "+" + z.inner.Name() }
