package schema_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/schema"
	_ "github.com/pyranha-labs/atoparser/schema/v1_26"
	_ "github.com/pyranha-labs/atoparser/schema/v2_10"
	_ "github.com/pyranha-labs/atoparser/schema/v2_11"
	_ "github.com/pyranha-labs/atoparser/schema/v2_12"
	_ "github.com/pyranha-labs/atoparser/schema/v2_3"
	_ "github.com/pyranha-labs/atoparser/schema/v2_4"
	_ "github.com/pyranha-labs/atoparser/schema/v2_5"
	_ "github.com/pyranha-labs/atoparser/schema/v2_6"
	_ "github.com/pyranha-labs/atoparser/schema/v2_7"
	_ "github.com/pyranha-labs/atoparser/schema/v2_8"
	_ "github.com/pyranha-labs/atoparser/schema/v2_9"
)

func TestVersionsOrderedOldestFirst(t *testing.T) {
	versions := schema.Versions()
	require.Len(t, versions, 11)
	require.Equal(t, schema.Version{Major: 1, Minor: 26}, versions[0])
	require.Equal(t, schema.Version{Major: 2, Minor: 12}, versions[len(versions)-1])

	require.True(t, sort.SliceIsSorted(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	}))
}

func TestLatest(t *testing.T) {
	require.Equal(t, schema.Version{Major: 2, Minor: 12}, schema.Latest().Version)
}

func TestLookup(t *testing.T) {
	for _, v := range schema.Versions() {
		desc, ok := schema.Lookup(v)
		require.True(t, ok)
		require.Equal(t, v, desc.Version)
	}

	_, ok := schema.Lookup(schema.Version{Major: 2, Minor: 2})
	require.False(t, ok)
}

// Header byte length is what makes the probe-then-reinterpret header read
// safe, so every revision must agree on it.
func TestHeaderSizeUniform(t *testing.T) {
	want := schema.Latest().HeaderSize
	for _, v := range schema.Versions() {
		desc, _ := schema.Lookup(v)
		require.Equal(t, want, desc.HeaderSize, "header size for %s", v)
	}
}

// 2.5 reused the 2.4 layout and 2.12 the 2.11 layout; their descriptors must
// agree on every struct size.
func TestAliasedRevisionSizes(t *testing.T) {
	pairs := [][2]schema.Version{
		{{Major: 2, Minor: 4}, {Major: 2, Minor: 5}},
		{{Major: 2, Minor: 11}, {Major: 2, Minor: 12}},
	}

	for _, pair := range pairs {
		a, ok := schema.Lookup(pair[0])
		require.True(t, ok)
		b, ok := schema.Lookup(pair[1])
		require.True(t, ok)

		require.Equal(t, a.SStatSize, b.SStatSize)
		require.Equal(t, a.TStatSize, b.TStatSize)
		require.Equal(t, a.RecordSize, b.RecordSize)
		require.Equal(t, a.CStatSize, b.CStatSize)
	}
}

func TestHasCGroups(t *testing.T) {
	for _, v := range schema.Versions() {
		desc, _ := schema.Lookup(v)
		require.Equal(t, v.AtLeast(2, 11), desc.HasCGroups(), "cgroup support for %s", v)
	}
}

func TestExpectedSize(t *testing.T) {
	oldest, ok := schema.Lookup(schema.Version{Major: 1, Minor: 26})
	require.True(t, ok)

	// PStat is the 1.26 name for the per-task struct.
	size, ok := oldest.ExpectedSize("PStat")
	require.True(t, ok)
	require.Equal(t, oldest.TStatSize, size)

	size, ok = oldest.ExpectedSize("TStat")
	require.True(t, ok)
	require.Equal(t, oldest.TStatSize, size)

	_, ok = oldest.ExpectedSize("CStat")
	require.False(t, ok)

	latest := schema.Latest()
	size, ok = latest.ExpectedSize("CStat")
	require.True(t, ok)
	require.Equal(t, latest.CStatSize, size)

	_, ok = latest.ExpectedSize("bogus")
	require.False(t, ok)
}
