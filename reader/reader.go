// Package reader opens raw atop logs for decoding, transparently unwrapping
// the gzip container that log rotation commonly leaves them in. Detection
// sniffs the gzip magic bytes rather than trusting the file extension.
package reader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// NewReader wraps r for decoding, inserting gzip decompression when the gzip
// magic leads the stream. The returned reader is buffered either way.
func NewReader(r io.Reader) (io.Reader, error) {
	buffered := bufio.NewReader(r)

	magic, err := buffered.Peek(len(gzipMagic))
	if err != nil {
		// A stream shorter than the magic cannot be a container; hand it to
		// the decoder untouched and let header validation reject it.
		if errors.Is(err, io.EOF) {
			return buffered, nil
		}

		return nil, err
	}

	if !bytes.Equal(magic, gzipMagic) {
		return buffered, nil
	}

	unzipped, err := gzip.NewReader(buffered)
	if err != nil {
		return nil, fmt.Errorf("open gzip container: %w", err)
	}

	return unzipped, nil
}

// File is an open log stream plus the handle to close when done with it.
type File struct {
	io.Reader
	file *os.File
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.file.Close()
}

// Open opens the log at path for decoding, unwrapping a gzip container when
// present.
func Open(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	stream, err := NewReader(file)
	if err != nil {
		file.Close()

		return nil, err
	}

	return &File{Reader: stream, file: file}, nil
}
