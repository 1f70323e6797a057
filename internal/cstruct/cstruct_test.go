package cstruct

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/errs"
)

type inner struct {
	A int32
	B int32
}

type outer struct {
	N     int64
	Pair  inner
	Name  [8]byte
	Items [3]int64
}

func TestSizeOf(t *testing.T) {
	require.Equal(t, 8, SizeOf[inner]())
	require.Equal(t, 8+8+8+24, SizeOf[outer]())
}

func TestFromBytesRoundTrip(t *testing.T) {
	v := &outer{
		N:     42,
		Pair:  inner{A: -1, B: 7},
		Items: [3]int64{10, 20, 30},
	}
	copy(v.Name[:], "atop")

	got, err := FromBytes[outer](Bytes(v))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestFromBytes_Short(t *testing.T) {
	_, err := FromBytes[outer](make([]byte, SizeOf[outer]()-1))
	require.ErrorIs(t, err, errs.ErrShortBuffer)
}

func TestFromBytes_ExcessIgnored(t *testing.T) {
	buf := append(Bytes(&outer{N: 9}), 0xff, 0xff)

	got, err := FromBytes[outer](buf)
	require.NoError(t, err)
	require.Equal(t, int64(9), got.N)
}

func TestRead(t *testing.T) {
	v := &outer{N: 5, Pair: inner{A: 1, B: 2}}

	got, err := Read[outer](bytes.NewReader(Bytes(v)))
	require.NoError(t, err)
	require.Equal(t, v, got)

	// Clean EOF at a struct boundary.
	_, err = Read[outer](bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)

	// EOF mid-struct.
	_, err = Read[outer](bytes.NewReader(Bytes(v)[:4]))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
