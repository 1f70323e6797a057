package rawlog

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/compress"
	"github.com/pyranha-labs/atoparser/errs"
	"github.com/pyranha-labs/atoparser/format"
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_11"
)

var fixtureTime = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func deflate(t *testing.T, raw []byte) []byte {
	t.Helper()

	codec, err := compress.GetCodec(format.CompressionZlib)
	require.NoError(t, err)

	compressed, err := codec.Compress(raw)
	require.NoError(t, err)

	return compressed
}

func header126(t *testing.T) *v1_26.Header {
	t.Helper()

	desc, ok := schema.Lookup(schema.Version{Major: 1, Minor: 26})
	require.True(t, ok)

	header := &v1_26.Header{
		Magic:      Magic,
		Aversion:   desc.Version.Aversion(),
		Rawheadlen: uint16(desc.HeaderSize),
		Rawreclen:  uint16(desc.RecordSize),
		Hertz:      100,
		Sstatlen:   uint32(desc.SStatSize),
		Pstatlen:   uint32(desc.TStatSize),
		Pagesize:   4096,
	}
	copy(header.Utsname.Nodename[:], "buildhost")
	copy(header.Utsname.Release[:], "5.15.0-generic")

	return header
}

func appendSample126(t *testing.T, log *bytes.Buffer, when time.Time, tasks int) {
	t.Helper()

	sstat := &v1_26.SStat{}
	sstat.Cpu.Nrcpu = 2
	sstat.Cpu.Lavg1 = 0.5
	sstatSeg := deflate(t, cstruct.Bytes(sstat))

	var taskBuf bytes.Buffer
	for i := 0; i < tasks; i++ {
		pstat := &v1_26.PStat{}
		pstat.Gen.Pid = int32(100 + i)
		copy(pstat.Gen.Name[:], "proc")
		taskBuf.Write(cstruct.Bytes(pstat))
	}
	tstatSeg := deflate(t, taskBuf.Bytes())

	record := &v1_26.Record{
		Curtime:  when.Unix(),
		Interval: 10,
		Scomplen: uint32(len(sstatSeg)),
		Pcomplen: uint32(len(tstatSeg)),
		Nlist:    uint32(tasks),
	}
	log.Write(cstruct.Bytes(record))
	log.Write(sstatSeg)
	log.Write(tstatSeg)
}

// buildLog126 assembles a complete 1.26 log: header, samples, and the
// end-of-stream sentinel record (zero compressed lengths).
func buildLog126(t *testing.T, samples int) []byte {
	t.Helper()

	var log bytes.Buffer
	log.Write(cstruct.Bytes(header126(t)))
	for i := 0; i < samples; i++ {
		appendSample126(t, &log, fixtureTime.Add(time.Duration(i)*10*time.Second), 2)
	}
	log.Write(cstruct.Bytes(&v1_26.Record{}))

	return log.Bytes()
}

func collect(t *testing.T, session *Session) []*Sample {
	t.Helper()

	var samples []*Sample
	for sample, err := range session.Samples() {
		require.NoError(t, err)
		samples = append(samples, sample)
	}

	return samples
}

func TestNewSessionResolvesHeader(t *testing.T) {
	session, err := NewSession(bytes.NewReader(buildLog126(t, 1)))
	require.NoError(t, err)

	require.Equal(t, schema.Version{Major: 1, Minor: 26}, session.Version())
	require.Equal(t, "buildhost", session.Header().HostName())
	require.Equal(t, "5.15.0-generic", session.Header().Release())
	require.Equal(t, 100, session.Header().TicksPerSecond())
	require.Equal(t, 4096, session.Header().PageSize())

	header, ok := session.Header().(*v1_26.Header)
	require.True(t, ok)
	require.Equal(t, Magic, header.Magic)
}

func TestSamples(t *testing.T) {
	session, err := NewSession(bytes.NewReader(buildLog126(t, 2)))
	require.NoError(t, err)

	samples := collect(t, session)
	require.Len(t, samples, 2)

	first := samples[0]
	require.Equal(t, fixtureTime, first.Record.Timestamp().UTC())
	require.Equal(t, 10*time.Second, first.Record.SampleInterval())
	require.Equal(t, 2, first.Record.TaskCount())

	sstat, ok := first.SStat.(*v1_26.SStat)
	require.True(t, ok)
	require.Equal(t, int64(2), sstat.Cpu.Nrcpu)

	require.Len(t, first.TStats, 2)
	pstat, ok := first.TStats[0].(*v1_26.PStat)
	require.True(t, ok)
	require.Equal(t, int32(100), pstat.Gen.Pid)

	require.Nil(t, first.CGroups)

	second := samples[1]
	require.Equal(t, fixtureTime.Add(10*time.Second), second.Record.Timestamp().UTC())
}

func TestSamplesStopsAtSentinel(t *testing.T) {
	// Valid sample data after the sentinel record must not be decoded.
	var log bytes.Buffer
	log.Write(buildLog126(t, 1))
	appendSample126(t, &log, fixtureTime.Add(time.Hour), 1)

	session, err := NewSession(bytes.NewReader(log.Bytes()))
	require.NoError(t, err)
	require.Len(t, collect(t, session), 1)
}

func TestSamplesEarlyBreak(t *testing.T) {
	session, err := NewSession(bytes.NewReader(buildLog126(t, 3)))
	require.NoError(t, err)

	count := 0
	for _, err := range session.Samples() {
		require.NoError(t, err)
		count++
		if count == 1 {
			break
		}
	}
	require.Equal(t, 1, count)
}

func TestSamplesExhausted(t *testing.T) {
	session, err := NewSession(bytes.NewReader(buildLog126(t, 1)))
	require.NoError(t, err)
	require.Len(t, collect(t, session), 1)

	for _, err := range session.Samples() {
		require.ErrorIs(t, err, errs.ErrSessionExhausted)
	}
}

func TestNewSessionBadMagic(t *testing.T) {
	log := buildLog126(t, 1)
	log[0] ^= 0xff

	_, err := NewSession(bytes.NewReader(log))
	require.ErrorIs(t, err, errs.ErrBadMagic)

	var ferr *errs.FormatError
	require.ErrorAs(t, err, &ferr)
	require.NotEqual(t, Magic, ferr.Magic)
}

func TestNewSessionIncompatibleSizes(t *testing.T) {
	header := header126(t)
	header.Sstatlen += 9
	header.Pstatlen++

	_, err := NewSession(bytes.NewReader(cstruct.Bytes(header)))
	require.ErrorIs(t, err, errs.ErrIncompatible)

	var ferr *errs.FormatError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, "1.26", ferr.Version)
	require.Len(t, ferr.Mismatches, 2)
	require.Equal(t, "SStat", ferr.Mismatches[0].Name)
	require.Equal(t, ferr.Mismatches[0].Expected+9, ferr.Mismatches[0].Found)
	require.Equal(t, "PStat", ferr.Mismatches[1].Name)
	require.Contains(t, err.Error(), "found")
}

func TestNewSessionUnknownVersionFallback(t *testing.T) {
	latest := schema.Latest()

	header := &v2_11.Header{
		Magic:      Magic,
		Aversion:   schema.Version{Major: 3, Minor: 1}.Aversion(),
		Rawheadlen: uint16(latest.HeaderSize),
		Rawreclen:  uint16(latest.RecordSize),
		Sstatlen:   uint32(latest.SStatSize),
		Tstatlen:   uint32(latest.TStatSize),
	}
	copy(header.Utsname.Nodename[:], "futurehost")
	buf := cstruct.Bytes(header)

	t.Run("fallback decodes under the newest schema", func(t *testing.T) {
		session, err := NewSession(bytes.NewReader(buf))
		require.NoError(t, err)
		require.Equal(t, schema.Version{Major: 3, Minor: 1}, session.Version())
		require.Equal(t, latest, session.Descriptor())
		require.Equal(t, "futurehost", session.Header().HostName())
	})

	t.Run("WithoutFallback rejects the version", func(t *testing.T) {
		_, err := NewSession(bytes.NewReader(buf), WithoutFallback())
		require.ErrorIs(t, err, errs.ErrUnknownVersion)
	})

	t.Run("incompatible future layout fails the size check", func(t *testing.T) {
		bad := *header
		bad.Sstatlen += 100

		_, err := NewSession(bytes.NewReader(cstruct.Bytes(&bad)))
		require.ErrorIs(t, err, errs.ErrIncompatible)
	})
}

func TestSamplesTruncatedSegment(t *testing.T) {
	build := func() []byte {
		var log bytes.Buffer
		log.Write(cstruct.Bytes(header126(t)))

		record := &v1_26.Record{
			Curtime:  fixtureTime.Unix(),
			Interval: 10,
			Scomplen: 100,
			Pcomplen: 50,
			Nlist:    1,
		}
		log.Write(cstruct.Bytes(record))
		// Far fewer bytes than the record claims.
		log.Write([]byte{0x78, 0x9c, 0x01})

		return log.Bytes()
	}

	t.Run("soft stop by default", func(t *testing.T) {
		session, err := NewSession(bytes.NewReader(build()))
		require.NoError(t, err)
		require.Empty(t, collect(t, session))
	})

	t.Run("error in strict mode", func(t *testing.T) {
		session, err := NewSession(bytes.NewReader(build()), WithStrictTruncation())
		require.NoError(t, err)

		for _, err := range session.Samples() {
			require.ErrorIs(t, err, errs.ErrTruncated)
		}
	})
}

func TestSamplesTruncatedRecord(t *testing.T) {
	// A log cut off partway through a record ends cleanly, the same way a
	// missing sentinel at end of file does.
	var log bytes.Buffer
	log.Write(cstruct.Bytes(header126(t)))
	appendSample126(t, &log, fixtureTime, 1)
	log.Write([]byte{0x01, 0x02, 0x03})

	session, err := NewSession(bytes.NewReader(log.Bytes()))
	require.NoError(t, err)
	require.Len(t, collect(t, session), 1)
}

func TestWithMaxSamples(t *testing.T) {
	session, err := NewSession(bytes.NewReader(buildLog126(t, 3)), WithMaxSamples(2))
	require.NoError(t, err)
	require.Len(t, collect(t, session), 2)

	_, err = NewSession(bytes.NewReader(buildLog126(t, 1)), WithMaxSamples(0))
	require.Error(t, err)
}

func TestWithHeader(t *testing.T) {
	r := bytes.NewReader(buildLog126(t, 2))

	first, err := NewSession(r)
	require.NoError(t, err)

	// The stream now sits at the first record; a second session picks up from
	// there without re-reading the header.
	resumed, err := NewSession(r, WithHeader(first.Header()))
	require.NoError(t, err)
	require.Equal(t, first.Descriptor(), resumed.Descriptor())
	require.Len(t, collect(t, resumed), 2)
}

func buildLog211(t *testing.T) []byte {
	t.Helper()

	desc, ok := schema.Lookup(schema.Version{Major: 2, Minor: 11})
	require.True(t, ok)

	header := &v2_11.Header{
		Magic:      Magic,
		Aversion:   desc.Version.Aversion(),
		Rawheadlen: uint16(desc.HeaderSize),
		Rawreclen:  uint16(desc.RecordSize),
		Hertz:      100,
		Sstatlen:   uint32(desc.SStatSize),
		Tstatlen:   uint32(desc.TStatSize),
		Cstatlen:   int32(desc.CStatSize),
		Pagesize:   4096,
	}
	copy(header.Utsname.Nodename[:], "cghost")

	sstatSeg := deflate(t, cstruct.Bytes(&v2_11.SStat{}))

	tstat := &v2_11.TStat{}
	tstat.Gen.Pid = 1
	tstatSeg := deflate(t, cstruct.Bytes(tstat))

	// Two chain entries: the first carries a 16-byte cgroup name and two
	// pids, the second neither.
	named := &v2_11.CStat{}
	named.Gen.Structlen = int32(desc.CStatSize + 16)
	named.Gen.Sequence = 0
	named.Gen.Nprocs = 2

	bare := &v2_11.CStat{}
	bare.Gen.Structlen = int32(desc.CStatSize)
	bare.Gen.Sequence = 1

	var chainBuf bytes.Buffer
	chainBuf.Write(cstruct.Bytes(named))
	name := make([]byte, 16)
	copy(name, "/system.slice")
	chainBuf.Write(name)
	chainBuf.Write(cstruct.Bytes(bare))
	chainSeg := deflate(t, chainBuf.Bytes())

	var pidBuf bytes.Buffer
	for _, pid := range []int32{101, 202} {
		pidBuf.Write(cstruct.Bytes(&pid))
	}
	pidSeg := deflate(t, pidBuf.Bytes())

	record := &v2_11.Record{
		Curtime:  fixtureTime.Unix(),
		Interval: 10,
		Scomplen: uint32(len(sstatSeg)),
		Pcomplen: uint32(len(tstatSeg)),
		Ndeviat:  1,
		Ncgroups: 2,
		Ccomplen: uint32(len(chainSeg)),
		Ncgpids:  2,
		Icomplen: uint32(len(pidSeg)),
	}

	var log bytes.Buffer
	log.Write(cstruct.Bytes(header))
	log.Write(cstruct.Bytes(record))
	log.Write(sstatSeg)
	log.Write(tstatSeg)
	log.Write(chainSeg)
	log.Write(pidSeg)
	log.Write(cstruct.Bytes(&v2_11.Record{}))

	return log.Bytes()
}

func TestSamplesCGroups(t *testing.T) {
	session, err := NewSession(bytes.NewReader(buildLog211(t)))
	require.NoError(t, err)
	require.Equal(t, schema.Version{Major: 2, Minor: 11}, session.Version())
	require.True(t, session.Descriptor().HasCGroups())

	samples := collect(t, session)
	require.Len(t, samples, 1)

	sample := samples[0]
	require.Equal(t, 2, sample.Record.CGroupCount())
	require.Len(t, sample.CGroups, 2)

	named := sample.CGroups[0]
	require.Equal(t, 2, named.CStat.ProcCount())
	require.Equal(t, []int32{101, 202}, named.PIDs)

	cstat, ok := named.CStat.(*v2_11.CStat)
	require.True(t, ok)
	require.Equal(t, int32(0), cstat.Gen.Sequence)

	bare := sample.CGroups[1]
	require.Empty(t, bare.PIDs)
	require.Equal(t, int32(1), bare.CStat.(*v2_11.CStat).Gen.Sequence)
}
