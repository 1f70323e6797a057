package format

import "fmt"

// CompressionType identifies one of the compression codecs used around the atop
// raw-log format. Zlib is the codec the on-disk sample segments are written with;
// Gzip is the transparent outer container atop logs are commonly stored in; Zstd
// and LZ4 are offered for recompressing converted output.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZlib CompressionType = 0x2 // CompressionZlib represents zlib (RFC 1950) compression.
	CompressionGzip CompressionType = 0x3 // CompressionGzip represents gzip (RFC 1952) compression.
	CompressionZstd CompressionType = 0x4 // CompressionZstd represents Zstandard compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a user-facing codec name to its CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch name {
	case "none", "":
		return CompressionNone, nil
	case "zlib":
		return CompressionZlib, nil
	case "gzip":
		return CompressionGzip, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %q", name)
	}
}
