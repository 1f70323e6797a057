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
)

func descFor(t *testing.T, major, minor int) *schema.Descriptor {
	t.Helper()

	desc, ok := schema.Lookup(schema.Version{Major: major, Minor: minor})
	require.True(t, ok)

	return desc
}

func TestPartitionTStats(t *testing.T) {
	desc := descFor(t, 1, 26)

	var buf bytes.Buffer
	for _, pid := range []int32{1, 2, 3} {
		pstat := &v1_26.PStat{}
		pstat.Gen.Pid = pid
		buf.Write(cstruct.Bytes(pstat))
	}

	t.Run("exact partition", func(t *testing.T) {
		tstats, err := partitionTStats(desc, buf.Bytes(), 3)
		require.NoError(t, err)
		require.Len(t, tstats, 3)

		for i, want := range []int32{1, 2, 3} {
			pstat, ok := tstats[i].(*v1_26.PStat)
			require.True(t, ok)
			require.Equal(t, want, pstat.Gen.Pid)
		}
	})

	t.Run("excess bytes ignored", func(t *testing.T) {
		padded := append(bytes.Clone(buf.Bytes()), 0xde, 0xad, 0xbe)
		tstats, err := partitionTStats(desc, padded, 3)
		require.NoError(t, err)
		require.Len(t, tstats, 3)
	})

	t.Run("count exceeding buffer is fatal", func(t *testing.T) {
		_, err := partitionTStats(desc, buf.Bytes(), 4)
		require.ErrorIs(t, err, errs.ErrBounds)
	})

	t.Run("zero count", func(t *testing.T) {
		tstats, err := partitionTStats(desc, nil, 0)
		require.NoError(t, err)
		require.Empty(t, tstats)
	})
}

func TestChainCGroups(t *testing.T) {
	desc := descFor(t, 2, 11)

	// First entry carries a 24-byte name and three pids, second is bare.
	named := &v2_11.CStat{}
	named.Gen.Structlen = int32(desc.CStatSize + 24)
	named.Gen.Nprocs = 3

	bare := &v2_11.CStat{}
	bare.Gen.Structlen = int32(desc.CStatSize)

	var chain bytes.Buffer
	chain.Write(cstruct.Bytes(named))
	chain.Write(make([]byte, 24))
	chain.Write(cstruct.Bytes(bare))

	var pids bytes.Buffer
	for _, pid := range []int32{7, 8, 9} {
		pids.Write(cstruct.Bytes(&pid))
	}

	t.Run("cursor driven by reported lengths", func(t *testing.T) {
		cgroups, err := chainCGroups(desc, chain.Bytes(), pids.Bytes(), 2)
		require.NoError(t, err)
		require.Len(t, cgroups, 2)
		require.Equal(t, []int32{7, 8, 9}, cgroups[0].PIDs)
		require.Equal(t, 3, cgroups[0].CStat.ProcCount())
		require.Empty(t, cgroups[1].PIDs)
	})

	t.Run("chain shorter than count is fatal", func(t *testing.T) {
		_, err := chainCGroups(desc, chain.Bytes(), pids.Bytes(), 3)
		require.ErrorIs(t, err, errs.ErrBounds)
	})

	t.Run("reported length below struct size is fatal", func(t *testing.T) {
		short := &v2_11.CStat{}
		short.Gen.Structlen = int32(desc.CStatSize - 4)

		_, err := chainCGroups(desc, cstruct.Bytes(short), nil, 1)
		require.ErrorIs(t, err, errs.ErrBounds)
	})

	t.Run("pid list shorter than claimed is fatal", func(t *testing.T) {
		greedy := &v2_11.CStat{}
		greedy.Gen.Structlen = int32(desc.CStatSize)
		greedy.Gen.Nprocs = 5

		_, err := chainCGroups(desc, cstruct.Bytes(greedy), pids.Bytes(), 1)
		require.ErrorIs(t, err, errs.ErrBounds)
	})
}
