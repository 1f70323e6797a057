package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements gzip (RFC 1952) compression. Atop logs are commonly
// rotated into gzip files; the reader package uses this format for the outer
// container, and the CLI offers it for recompressing converted output.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a new gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress wraps the input data in a gzip stream at the default level.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a complete gzip stream.
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return decompressed, nil
}
