package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pyranha-labs/atoparser/schema"
)

func TestVersionOf(t *testing.T) {
	tests := []struct {
		name     string
		aversion uint16
		want     schema.Version
	}{
		{name: "1.26", aversion: 0x011a, want: schema.Version{Major: 1, Minor: 26}},
		{name: "2.3", aversion: 0x0203, want: schema.Version{Major: 2, Minor: 3}},
		{name: "2.11", aversion: 0x020b, want: schema.Version{Major: 2, Minor: 11}},
		{name: "top bit masked", aversion: 0x820b, want: schema.Version{Major: 2, Minor: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, schema.VersionOf(tt.aversion))
		})
	}
}

func TestVersionAversionRoundTrip(t *testing.T) {
	for _, v := range []schema.Version{
		{Major: 1, Minor: 26},
		{Major: 2, Minor: 3},
		{Major: 2, Minor: 12},
	} {
		require.Equal(t, v, schema.VersionOf(v.Aversion()))
	}
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		name  string
		v     schema.Version
		major int
		minor int
		want  bool
	}{
		{name: "equal", v: schema.Version{Major: 2, Minor: 11}, major: 2, minor: 11, want: true},
		{name: "newer minor", v: schema.Version{Major: 2, Minor: 12}, major: 2, minor: 11, want: true},
		{name: "older minor", v: schema.Version{Major: 2, Minor: 10}, major: 2, minor: 11, want: false},
		{name: "newer major older minor", v: schema.Version{Major: 3, Minor: 0}, major: 2, minor: 11, want: true},
		{name: "older major", v: schema.Version{Major: 1, Minor: 26}, major: 2, minor: 11, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.AtLeast(tt.major, tt.minor))
		})
	}
}

func TestVersionLess(t *testing.T) {
	require.True(t, schema.Version{Major: 1, Minor: 26}.Less(schema.Version{Major: 2, Minor: 3}))
	require.True(t, schema.Version{Major: 2, Minor: 3}.Less(schema.Version{Major: 2, Minor: 10}))
	require.False(t, schema.Version{Major: 2, Minor: 10}.Less(schema.Version{Major: 2, Minor: 10}))
	require.False(t, schema.Version{Major: 2, Minor: 10}.Less(schema.Version{Major: 2, Minor: 3}))
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "2.11", schema.Version{Major: 2, Minor: 11}.String())
	require.Equal(t, "1.26", schema.Version{Major: 1, Minor: 26}.String())
}

func TestCString(t *testing.T) {
	require.Equal(t, "host", schema.CString([]byte{'h', 'o', 's', 't', 0, 'x', 'x'}))
	require.Equal(t, "full", schema.CString([]byte("full")))
	require.Equal(t, "", schema.CString([]byte{0, 'a'}))
}
