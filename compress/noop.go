package compress

// NoOpCodec passes data through unmodified. Used by tests that build segment
// buffers with known byte content and by the CLI when no output compression is
// requested.
//
// Both methods return the input slice as-is; callers must not modify the input
// while the result is in use.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input data unmodified.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data unmodified.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
