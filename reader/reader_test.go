package reader_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/reader"
)

func gzipped(t *testing.T, payload []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestNewReader(t *testing.T) {
	payload := []byte("raw atop log bytes")

	t.Run("plain stream passes through", func(t *testing.T) {
		r, err := reader.NewReader(bytes.NewReader(payload))
		require.NoError(t, err)

		got, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	})

	t.Run("gzip container is unwrapped", func(t *testing.T) {
		r, err := reader.NewReader(bytes.NewReader(gzipped(t, payload)))
		require.NoError(t, err)

		got, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, payload, got)
	})

	t.Run("stream shorter than the magic passes through", func(t *testing.T) {
		r, err := reader.NewReader(bytes.NewReader([]byte{0x1f}))
		require.NoError(t, err)

		got, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, []byte{0x1f}, got)
	})
}

func TestOpen(t *testing.T) {
	payload := []byte("raw atop log bytes")
	dir := t.TempDir()

	plain := filepath.Join(dir, "atop_plain")
	require.NoError(t, os.WriteFile(plain, payload, 0o644))

	// Deliberately no .gz extension; detection must not rely on it.
	packed := filepath.Join(dir, "atop_rotated")
	require.NoError(t, os.WriteFile(packed, gzipped(t, payload), 0o644))

	for _, path := range []string{plain, packed} {
		file, err := reader.Open(path)
		require.NoError(t, err)

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, payload, got)
		require.NoError(t, file.Close())
	}

	_, err := reader.Open(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
