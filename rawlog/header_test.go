package rawlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/errs"
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_11"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_8"
)

// headerBytesFor builds a well-formed header for any registered revision.
// Four header layouts exist across the supported range: 1.26 (pstatlen),
// 2.3 through 2.7 (tstatlen), 2.8 through 2.10 (pidwidth), and 2.11+
// (cstatlen).
func headerBytesFor(t *testing.T, desc *schema.Descriptor) []byte {
	t.Helper()

	v := desc.Version
	switch {
	case v.Major == 1:
		return cstruct.Bytes(&v1_26.Header{
			Magic:      Magic,
			Aversion:   v.Aversion(),
			Rawheadlen: uint16(desc.HeaderSize),
			Rawreclen:  uint16(desc.RecordSize),
			Sstatlen:   uint32(desc.SStatSize),
			Pstatlen:   uint32(desc.TStatSize),
		})
	case v.AtLeast(2, 11):
		return cstruct.Bytes(&v2_11.Header{
			Magic:      Magic,
			Aversion:   v.Aversion(),
			Rawheadlen: uint16(desc.HeaderSize),
			Rawreclen:  uint16(desc.RecordSize),
			Sstatlen:   uint32(desc.SStatSize),
			Tstatlen:   uint32(desc.TStatSize),
			Cstatlen:   int32(desc.CStatSize),
		})
	case v.AtLeast(2, 8):
		return cstruct.Bytes(&v2_8.Header{
			Magic:      Magic,
			Aversion:   v.Aversion(),
			Rawheadlen: uint16(desc.HeaderSize),
			Rawreclen:  uint16(desc.RecordSize),
			Sstatlen:   uint32(desc.SStatSize),
			Tstatlen:   uint32(desc.TStatSize),
		})
	default:
		return cstruct.Bytes(&v2_3.Header{
			Magic:      Magic,
			Aversion:   v.Aversion(),
			Rawheadlen: uint16(desc.HeaderSize),
			Rawreclen:  uint16(desc.RecordSize),
			Sstatlen:   uint32(desc.SStatSize),
			Tstatlen:   uint32(desc.TStatSize),
		})
	}
}

func TestResolveHeaderAllVersions(t *testing.T) {
	for _, v := range schema.Versions() {
		desc, ok := schema.Lookup(v)
		require.True(t, ok)

		t.Run(v.String(), func(t *testing.T) {
			buf := headerBytesFor(t, desc)

			header, resolved, err := resolveHeader(bytes.NewReader(buf), true)
			require.NoError(t, err)
			require.Equal(t, desc, resolved)
			require.Equal(t, v, header.SemanticVersion())
			require.Equal(t, v.Aversion(), header.EncodedVersion())
			require.Equal(t, Magic, header.MagicNumber())
		})
	}
}

func TestResolveHeaderBadMagicAllVersions(t *testing.T) {
	for _, v := range schema.Versions() {
		desc, _ := schema.Lookup(v)

		t.Run(v.String(), func(t *testing.T) {
			buf := headerBytesFor(t, desc)
			buf[1] ^= 0xa5

			_, _, err := resolveHeader(bytes.NewReader(buf), true)
			require.ErrorIs(t, err, errs.ErrBadMagic)
		})
	}
}

func TestResolveHeaderShortStream(t *testing.T) {
	_, _, err := resolveHeader(bytes.NewReader(make([]byte, 12)), true)
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrBadMagic)
}
