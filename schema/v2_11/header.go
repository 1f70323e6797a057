// Package v2_11 mirrors the on-disk layout written by atop 2.11, which
// introduces cgroup reporting: every sample gains two extra compressed
// segments holding a chain of cgroup entries and their process-ID lists, and
// the header declares the fixed cgroup entry length in cstatlen. Atop 2.12
// kept the layout unchanged.
package v2_11

import (
	"time"

	"github.com/pyranha-labs/atoparser/schema"
)

// Header mirrors struct rawheader (rawlog.h); one reserved int became the
// fixed cgroup entry length.
type Header struct {
	Magic        uint32         `atop:"magic"`
	Aversion     uint16         `atop:"aversion"`
	Future1      uint16         `atop:"future1"`
	Future2      uint16         `atop:"future2"`
	Rawheadlen   uint16         `atop:"rawheadlen"`
	Rawreclen    uint16         `atop:"rawreclen"`
	Hertz        uint16         `atop:"hertz"`
	Pidwidth     uint16         `atop:"pidwidth"`
	Sfuture      [5]uint16      `atop:"sfuture"`
	Sstatlen     uint32         `atop:"sstatlen"`
	Tstatlen     uint32         `atop:"tstatlen"`
	Utsname      schema.UTSName `atop:"utsname"`
	Cfuture      [8]byte        `atop:"cfuture"`
	Pagesize     uint32         `atop:"pagesize"`
	Supportflags int32          `atop:"supportflags"`
	Osrel        int32          `atop:"osrel"`
	Osvers       int32          `atop:"osvers"`
	Ossub        int32          `atop:"ossub"`
	Cstatlen     int32          `atop:"cstatlen"`
	Ifuture      [5]int32       `atop:"ifuture"`
}

var _ schema.Header = (*Header)(nil)

func (h *Header) MagicNumber() uint32 { return h.Magic }

func (h *Header) EncodedVersion() uint16 { return h.Aversion }

func (h *Header) SemanticVersion() schema.Version { return schema.VersionOf(h.Aversion) }

// DeclaredSizes lists the same four claims as every earlier revision. The
// cstatlen field is not part of the compatibility check because cgroup chain
// entries are framed by their own structlen, not by the header.
func (h *Header) DeclaredSizes() []schema.SizeClaim {
	return []schema.SizeClaim{
		{Name: "Header", Declared: int(h.Rawheadlen)},
		{Name: "Record", Declared: int(h.Rawreclen)},
		{Name: "SStat", Declared: int(h.Sstatlen)},
		{Name: "TStat", Declared: int(h.Tstatlen)},
	}
}

func (h *Header) HostName() string { return schema.CString(h.Utsname.Nodename[:]) }

func (h *Header) Release() string { return schema.CString(h.Utsname.Release[:]) }

func (h *Header) TicksPerSecond() int { return int(h.Hertz) }

func (h *Header) PageSize() int { return int(h.Pagesize) }

func (h *Header) SupportFlags() int32 { return h.Supportflags }

// Record mirrors struct rawrecord (rawlog.h), extended with cgroup segment
// framing: ncgroups and ncgpids count the entries in the two extra compressed
// segments whose byte lengths are ccomplen and icomplen.
type Record struct {
	Curtime   int64     `atop:"curtime"`
	Flags     uint16    `atop:"flags"`
	Ncgroups  uint16    `atop:"ncgroups"`
	Sfuture   [2]uint16 `atop:"sfuture"`
	Scomplen  uint32    `atop:"scomplen"`
	Pcomplen  uint32    `atop:"pcomplen"`
	Interval  uint32    `atop:"interval"`
	Ndeviat   uint32    `atop:"ndeviat"`
	Nactproc  uint32    `atop:"nactproc"`
	Ntask     uint32    `atop:"ntask"`
	Totproc   uint32    `atop:"totproc"`
	Totrun    uint32    `atop:"totrun"`
	Totslpi   uint32    `atop:"totslpi"`
	Totslpu   uint32    `atop:"totslpu"`
	Totzomb   uint32    `atop:"totzomb"`
	Nexit     uint32    `atop:"nexit"`
	Noverflow uint32    `atop:"noverflow"`
	Totidle   uint32    `atop:"totidle"`
	Ccomplen  uint32    `atop:"ccomplen"`
	Coriglen  uint32    `atop:"coriglen"`
	Ncgpids   uint32    `atop:"ncgpids"`
	Icomplen  uint32    `atop:"icomplen"`
	Ifuture   uint32    `atop:"ifuture"`
}

var _ schema.Record = (*Record)(nil)

func (r *Record) Timestamp() time.Time { return time.Unix(r.Curtime, 0) }

func (r *Record) SampleInterval() time.Duration { return time.Duration(r.Interval) * time.Second }

func (r *Record) SStatCompLen() int { return int(r.Scomplen) }

func (r *Record) TStatCompLen() int { return int(r.Pcomplen) }

func (r *Record) TaskCount() int { return int(r.Ndeviat) }

func (r *Record) CGroupCount() int { return int(r.Ncgroups) }

func (r *Record) CStatCompLen() int { return int(r.Ccomplen) }

func (r *Record) PidListCompLen() int { return int(r.Icomplen) }
