package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec implements zlib (RFC 1950) compression, the algorithm atop uses for
// every sample segment inside a raw log. Decompress is the inflate primitive the
// decoding engine calls once per segment; Compress exists for writers and test
// fixtures.
type ZlibCodec struct{}

var _ Codec = (*ZlibCodec)(nil)

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress deflates the input data at the default compression level.
func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a complete zlib stream.
//
// A short or corrupted stream returns an error; the engine maps that onto its
// truncation policy rather than treating it as fatal.
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return decompressed, nil
}
