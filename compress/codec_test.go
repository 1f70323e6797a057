package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/format"
)

func testPayload() []byte {
	// Repetitive data so every real codec actually shrinks it.
	payload := make([]byte, 0, 4096)
	for i := 0; i < 256; i++ {
		payload = append(payload, bytes.Repeat([]byte{byte(i)}, 16)...)
	}

	return payload
}

func TestCodecRoundTrip(t *testing.T) {
	payload := testPayload()

	codecs := map[string]Codec{
		"zlib": NewZlibCodec(),
		"gzip": NewGzipCodec(),
		"zstd": NewZstdCodec(),
		"lz4":  NewLZ4Codec(),
	}
	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)
			require.Less(t, len(compressed), len(payload))

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestNoOpCodec(t *testing.T) {
	payload := testPayload()
	codec := NewNoOpCodec()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestZlibCodec_DecompressTruncated(t *testing.T) {
	codec := NewZlibCodec()

	compressed, err := codec.Compress(testPayload())
	require.NoError(t, err)

	// Cut the stream mid-body; inflate must fail rather than return partial data.
	_, err = codec.Decompress(compressed[:len(compressed)/2])
	require.Error(t, err)
}

func TestZlibCodec_DecompressGarbage(t *testing.T) {
	codec := NewZlibCodec()

	_, err := codec.Decompress([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	for _, compressionType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZlib,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compressionType)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xff))
	require.Error(t, err)
}
