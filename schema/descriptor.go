package schema

import "io"

// PidSize is the byte width of one process ID in a cgroup pid-list segment
// (pid_t). Stable across every supported revision.
const PidSize = 4

// Descriptor bundles everything the decoding engine needs to read one schema
// revision: the byte sizes of its fixed structs and the functions that
// materialize them. The engine is written once against this type and is
// otherwise version-agnostic.
//
// Descriptors are built at package init and never mutated afterward.
type Descriptor struct {
	Version Version

	HeaderSize int
	RecordSize int
	SStatSize  int
	TStatSize  int
	// CStatSize is the fixed portion of one cgroup entry; the on-disk entry is
	// longer by its variable-length name. Zero for revisions without cgroups.
	CStatSize int

	// DecodeHeader materializes this revision's header from an already-read
	// buffer, allowing the engine to reinterpret probe bytes without re-reading.
	DecodeHeader func(buf []byte) (Header, error)

	// ReadRecord reads one record directly from the stream.
	ReadRecord func(r io.Reader) (Record, error)

	// DecodeSStat materializes the system-stats struct from a decompressed
	// buffer. The concrete type is this revision's SStat.
	DecodeSStat func(buf []byte) (any, error)

	// DecodeTStat materializes one task-stats element from a decompressed
	// buffer slice. The concrete type is this revision's TStat.
	DecodeTStat func(buf []byte) (any, error)

	// DecodeCStat materializes one cgroup entry from a decompressed buffer
	// slice. Nil for revisions without cgroup reporting.
	DecodeCStat func(buf []byte) (CStat, error)
}

// HasCGroups reports whether this revision carries the cgroup chain after the
// task-stats segment.
func (d *Descriptor) HasCGroups() bool {
	return d.DecodeCStat != nil
}

// ExpectedSize resolves a header size claim by struct name to the size computed
// for this revision. PStat is the pre-2.3 name for the per-task struct.
func (d *Descriptor) ExpectedSize(name string) (int, bool) {
	switch name {
	case "Header":
		return d.HeaderSize, true
	case "Record":
		return d.RecordSize, true
	case "SStat":
		return d.SStatSize, true
	case "TStat", "PStat":
		return d.TStatSize, true
	case "CStat":
		return d.CStatSize, d.HasCGroups()
	default:
		return 0, false
	}
}
