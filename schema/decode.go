package schema

import (
	"io"

	"github.com/pyranha-labs/atoparser/internal/cstruct"
)

// HeaderDecoder adapts a concrete header type into the erased DecodeHeader
// signature used by Descriptor tables. The pointer type must implement Header.
func HeaderDecoder[T any, PT interface {
	*T
	Header
}]() func([]byte) (Header, error) {
	return func(buf []byte) (Header, error) {
		v, err := cstruct.FromBytes[T](buf)
		if err != nil {
			return nil, err
		}

		return PT(v), nil
	}
}

// RecordReader adapts a concrete record type into the erased ReadRecord
// signature used by Descriptor tables.
func RecordReader[T any, PT interface {
	*T
	Record
}]() func(io.Reader) (Record, error) {
	return func(r io.Reader) (Record, error) {
		v, err := cstruct.Read[T](r)
		if err != nil {
			return nil, err
		}

		return PT(v), nil
	}
}

// StatDecoder adapts a concrete stat struct into the erased decode signature
// used by Descriptor tables for system and task statistics.
func StatDecoder[T any]() func([]byte) (any, error) {
	return func(buf []byte) (any, error) {
		v, err := cstruct.FromBytes[T](buf)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

// CStatDecoder adapts a concrete cgroup entry type into the erased DecodeCStat
// signature used by Descriptor tables.
func CStatDecoder[T any, PT interface {
	*T
	CStat
}]() func([]byte) (CStat, error) {
	return func(buf []byte) (CStat, error) {
		v, err := cstruct.FromBytes[T](buf)
		if err != nil {
			return nil, err
		}

		return PT(v), nil
	}
}
