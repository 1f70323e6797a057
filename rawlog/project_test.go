package rawlog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_8"
)

func TestMapping(t *testing.T) {
	m := NewMapping()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"a", "b"}, m.Keys())

	value, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 3, value)

	_, ok = m.Get("missing")
	require.False(t, ok)
}

func TestMappingMarshalJSON(t *testing.T) {
	type pair struct {
		B       int32   `atop:"b"`
		A       int32   `atop:"a"`
		Name    [4]byte `atop:"name"`
		Cfuture int32   `atop:"cfuture"`
	}

	m := StructToMap(&pair{B: 2, A: 1, Name: [4]byte{'h', 'i'}})

	out, err := json.Marshal(m)
	require.NoError(t, err)
	// Declaration order, not alphabetical, and no reserved fields.
	require.JSONEq(t, `{"b":2,"a":1,"name":"hi"}`, string(out))
	require.Equal(t, `{"b":2,"a":1,"name":"hi"}`, string(out))
}

func TestStructToMapDropsReservedFields(t *testing.T) {
	m := StructToMap(&v1_26.Record{Curtime: 42, Interval: 10})

	_, ok := m.Get("curtime")
	require.True(t, ok)

	for _, key := range m.Keys() {
		require.NotContains(t, key, "future")
	}
}

func TestStructToMapLimiter(t *testing.T) {
	tests := []struct {
		name  string
		nrcpu int64
		want  int
	}{
		{name: "live count below capacity", nrcpu: 6, want: 6},
		{name: "count above capacity clamps", nrcpu: 100, want: v1_26.MaxCPU},
		{name: "negative count clamps to zero", nrcpu: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := v1_26.CPUStat{Nrcpu: tt.nrcpu}
			m := StructToMap(&cpu)

			value, ok := m.Get("cpu")
			require.True(t, ok)
			require.Len(t, value, tt.want)
		})
	}
}

func TestStructToMapNested(t *testing.T) {
	pstat := &v1_26.PStat{}
	pstat.Gen.Pid = 99
	copy(pstat.Gen.Name[:], "init")
	pstat.Gen.State = 'S'

	m := StructToMap(pstat)
	require.Equal(t, []string{"gen", "cpu", "dsk", "mem", "net"}, m.Keys())

	genValue, ok := m.Get("gen")
	require.True(t, ok)
	gen, ok := genValue.(*Mapping)
	require.True(t, ok)

	pid, _ := gen.Get("pid")
	require.Equal(t, int32(99), pid)

	name, _ := gen.Get("name")
	require.Equal(t, "init", name)

	// A lone char field projects as a one-character string.
	state, _ := gen.Get("state")
	require.Equal(t, "S", state)
}

func TestStructToMapCharDecoding(t *testing.T) {
	dsk := v1_26.PerDSK{}
	copy(dsk.Name[:], []byte{'s', 'd', 'a', 0xff, 0, 'x'})

	m := StructToMap(&dsk)
	name, _ := m.Get("name")
	// NUL terminates; the stray invalid byte is dropped, not replaced.
	require.Equal(t, "sda", name)
}

func TestStructToMapNumericBytes(t *testing.T) {
	llc := v2_8.PerLLC{ID: 7, Occupancy: 0.25}

	m := StructToMap(&llc)
	id, ok := m.Get("id")
	require.True(t, ok)
	require.Equal(t, uint8(7), id)
}

func TestStructToMapLimiteredStructArray(t *testing.T) {
	intf := v1_26.IntfStat{Nrintf: 1}
	copy(intf.Intf[0].Name[:], "eth0")
	intf.Intf[0].Rbyte = 1024

	m := StructToMap(&intf)
	value, ok := m.Get("intf")
	require.True(t, ok)

	elems, ok := value.([]any)
	require.True(t, ok)
	require.Len(t, elems, 1)

	first, ok := elems[0].(*Mapping)
	require.True(t, ok)

	name, _ := first.Get("name")
	require.Equal(t, "eth0", name)
	rbyte, _ := first.Get("rbyte")
	require.Equal(t, int64(1024), rbyte)
}

func TestStructToMapHeader(t *testing.T) {
	header := header126(t)

	m := StructToMap(header)

	utsValue, ok := m.Get("utsname")
	require.True(t, ok)
	uts, ok := utsValue.(*Mapping)
	require.True(t, ok)

	nodename, _ := uts.Get("nodename")
	require.Equal(t, "buildhost", nodename)

	hertz, _ := m.Get("hertz")
	require.Equal(t, uint16(100), hertz)
}
