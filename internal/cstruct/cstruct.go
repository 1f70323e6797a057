// Package cstruct materializes C-layout structs from raw bytes.
//
// The atop raw-log format is written by a C program that dumps its in-memory
// structs directly to disk. The schema packages mirror those structs with Go
// types whose fields use the same widths and ordering, so the Go compiler
// produces the same layout (including padding) as the C compiler did, and a
// struct can be materialized with a single copy of its bytes. Byte order is the
// producing host's native order, matching the format itself.
//
// Only structs composed of fixed-size scalars, arrays, and nested structs of
// the same may be used with this package; anything containing Go pointers,
// slices, strings, or maps would be memory-unsafe to fill by copy.
package cstruct

import (
	"io"
	"unsafe"

	"github.com/pyranha-labs/atoparser/errs"
)

// SizeOf returns the in-memory (and therefore on-disk) size of T in bytes.
func SizeOf[T any]() int {
	var v T

	return int(unsafe.Sizeof(v))
}

// FromBytes materializes one T from the front of buf by copy.
//
// Returns errs.ErrShortBuffer if buf holds fewer bytes than T occupies.
// Excess bytes are ignored; the caller owns framing.
func FromBytes[T any](buf []byte) (*T, error) {
	v := new(T)
	size := int(unsafe.Sizeof(*v))
	if len(buf) < size {
		return nil, errs.ErrShortBuffer
	}

	copy(unsafe.Slice((*byte)(unsafe.Pointer(v)), size), buf)

	return v, nil
}

// Read materializes one T by reading exactly its size from r.
//
// A clean EOF before any bytes are read returns io.EOF; an EOF partway through
// returns io.ErrUnexpectedEOF, mirroring io.ReadFull.
func Read[T any](r io.Reader) (*T, error) {
	v := new(T)
	if _, err := io.ReadFull(r, unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))); err != nil {
		return nil, err
	}

	return v, nil
}

// Bytes returns a copy of v's in-memory representation.
func Bytes[T any](v *T) []byte {
	size := int(unsafe.Sizeof(*v))
	buf := make([]byte, size)
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(v)), size))

	return buf
}
