package schema

import "time"

// SizeClaim is one struct length declared inside a raw header, identified by
// the struct it frames. The decoding engine checks every claim against the
// resolved descriptor before trusting the file.
type SizeClaim struct {
	Name     string
	Declared int
}

// Header is the version-independent view of a raw file header. Each revision's
// concrete header struct implements it; the underlying struct remains available
// for projection and direct field access.
type Header interface {
	// MagicNumber returns the leading magic value found in the stream.
	MagicNumber() uint32

	// EncodedVersion returns the packed on-disk version field.
	EncodedVersion() uint16

	// SemanticVersion returns the unpacked major.minor version.
	SemanticVersion() Version

	// DeclaredSizes lists every struct length the header claims, in declaration
	// order. The engine validates each against the resolved descriptor.
	DeclaredSizes() []SizeClaim

	// HostName returns the nodename of the system that produced the log.
	HostName() string

	// Release returns the kernel release of the producing system.
	Release() string

	// TicksPerSecond returns the clock frequency (HZ) of the producing system.
	TicksPerSecond() int

	// PageSize returns the memory page size of the producing system.
	PageSize() int

	// SupportFlags returns the feature bits active when the log was produced.
	SupportFlags() int32
}

// Record is the version-independent view of one per-sample record. All byte
// counts refer to compressed segment lengths; the engine uses them as the sole
// framing source for the reads that follow the record.
type Record interface {
	// Timestamp returns the wall-clock time of the sample.
	Timestamp() time.Time

	// SampleInterval returns the sampling interval preceding this sample.
	SampleInterval() time.Duration

	// SStatCompLen returns the compressed byte length of the system-stats
	// segment. Non-positive marks the end-of-stream sentinel record.
	SStatCompLen() int

	// TStatCompLen returns the compressed byte length of the task-stats segment.
	TStatCompLen() int

	// TaskCount returns the number of task entries in the sample.
	TaskCount() int

	// CGroupCount returns the number of cgroup chain entries in the sample.
	// Zero for revisions predating cgroup reporting.
	CGroupCount() int

	// CStatCompLen returns the compressed byte length of the cgroup-stats
	// segment. Zero for revisions predating cgroup reporting.
	CStatCompLen() int

	// PidListCompLen returns the compressed byte length of the cgroup pid-list
	// segment. Zero for revisions predating cgroup reporting.
	PidListCompLen() int
}

// CStat is the version-independent view of one cgroup chain entry struct.
//
// Chain entries are self-describing: the on-disk entry ends with a
// variable-length name that is not materialized, so the struct's own reported
// length, not its fixed size, locates the next entry.
type CStat interface {
	// StructLen returns the entry's true total on-disk length, including the
	// trailing variable-length cgroup name.
	StructLen() int

	// ProcCount returns how many process IDs belong to this entry in the
	// parallel pid-list segment.
	ProcCount() int
}

// CGChainer pairs one decoded cgroup entry with its process-ID list, mirroring
// how the two are interleaved across the chain's two compressed segments.
type CGChainer struct {
	CStat CStat
	PIDs  []int32
}
