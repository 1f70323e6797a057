package compress

// ZstdCodec implements Zstandard compression, offered by the CLI for
// recompressing converted output where converted JSON can be an order of
// magnitude larger than the binary log it came from.
//
// Two implementations exist behind build tags: a pure-Go one (default) and a
// cgo one bound to libzstd for hosts where the native library is preferred.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
