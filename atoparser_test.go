package atoparser_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser"
	"github.com/pyranha-labs/atoparser/compress"
	"github.com/pyranha-labs/atoparser/format"
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/rawlog"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
)

// buildLog assembles a one-sample 1.26 log: header, record, two compressed
// segments, and the end-of-stream sentinel.
func buildLog(t *testing.T) []byte {
	t.Helper()

	desc, ok := schema.Lookup(schema.Version{Major: 1, Minor: 26})
	require.True(t, ok)

	codec, err := compress.GetCodec(format.CompressionZlib)
	require.NoError(t, err)

	header := &v1_26.Header{
		Magic:      rawlog.Magic,
		Aversion:   desc.Version.Aversion(),
		Rawheadlen: uint16(desc.HeaderSize),
		Rawreclen:  uint16(desc.RecordSize),
		Hertz:      250,
		Sstatlen:   uint32(desc.SStatSize),
		Pstatlen:   uint32(desc.TStatSize),
		Pagesize:   4096,
	}
	copy(header.Utsname.Nodename[:], "apihost")

	sstat := &v1_26.SStat{}
	sstat.Cpu.Nrcpu = 4
	sstatSeg, err := codec.Compress(cstruct.Bytes(sstat))
	require.NoError(t, err)

	pstat := &v1_26.PStat{}
	pstat.Gen.Pid = 1
	copy(pstat.Gen.Name[:], "init")
	tstatSeg, err := codec.Compress(cstruct.Bytes(pstat))
	require.NoError(t, err)

	record := &v1_26.Record{
		Curtime:  time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC).Unix(),
		Interval: 10,
		Scomplen: uint32(len(sstatSeg)),
		Pcomplen: uint32(len(tstatSeg)),
		Nlist:    1,
	}

	var log bytes.Buffer
	log.Write(cstruct.Bytes(header))
	log.Write(cstruct.Bytes(record))
	log.Write(sstatSeg)
	log.Write(tstatSeg)
	log.Write(cstruct.Bytes(&v1_26.Record{}))

	return log.Bytes()
}

func TestGetHeader(t *testing.T) {
	header, err := atoparser.GetHeader(bytes.NewReader(buildLog(t)))
	require.NoError(t, err)

	require.Equal(t, schema.Version{Major: 1, Minor: 26}, header.SemanticVersion())
	require.Equal(t, "apihost", header.HostName())
	require.Equal(t, 250, header.TicksPerSecond())
}

func TestGenerateStatistics(t *testing.T) {
	samples, err := atoparser.GenerateStatistics(bytes.NewReader(buildLog(t)))
	require.NoError(t, err)

	count := 0
	for sample, err := range samples {
		require.NoError(t, err)
		count++

		require.Equal(t, 1, sample.Record.TaskCount())

		sstat, ok := sample.SStat.(*v1_26.SStat)
		require.True(t, ok)
		require.Equal(t, int64(4), sstat.Cpu.Nrcpu)
	}
	require.Equal(t, 1, count)
}

func TestStructToMap(t *testing.T) {
	samples, err := atoparser.GenerateStatistics(bytes.NewReader(buildLog(t)))
	require.NoError(t, err)

	for sample, err := range samples {
		require.NoError(t, err)

		m := atoparser.StructToMap(sample.Record)
		interval, ok := m.Get("interval")
		require.True(t, ok)
		require.Equal(t, uint32(10), interval)

		tstat := atoparser.StructToMap(sample.TStats[0])
		gen, _ := tstat.Get("gen")
		name, _ := gen.(*atoparser.Mapping).Get("name")
		require.Equal(t, "init", name)
	}
}
