// Package compress provides the compression codecs used around atop raw logs.
//
// The atop log format compresses every sample segment (system stats, task stats,
// cgroup stats, pid lists) with zlib; ZlibCodec is therefore the decompression
// primitive the decoding engine depends on. The remaining codecs serve the thin
// collaborator layers: Gzip for the transparent outer file container, Zstd and
// LZ4 for recompressing converted output, and NoOp for tests that need to inspect
// segment buffers byte for byte.
//
// All codecs are stateless values, safe for concurrent use, and return newly
// allocated slices owned by the caller (except NoOp, which passes data through).
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZlib)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(segment)
package compress
