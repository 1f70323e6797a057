// Package v2_3 mirrors the on-disk layout written by atop 2.3. It introduces
// the 2.x record shape (ndeviat task counting), NFS and container statistics,
// and renames the per-task struct from pstat to tstat.
package v2_3

import (
	"time"

	"github.com/pyranha-labs/atoparser/schema"
)

// Capacity limits compiled into atop 2.3 (photosyst.h, photoproc.h).
const (
	MaxCPU       = 2048
	MaxDsk       = 1024
	MaxLvm       = 2048
	MaxMdd       = 256
	MaxIntf      = 128
	MaxContainer = 128
	MaxNFSMount  = 64
	MaxDkNam     = 32
	PNamLen      = 15
	CmdLen       = 255
)

// Header mirrors struct rawheader (rawlog.h). Identical to the 1.26 layout
// except that the per-task length field is now named tstatlen.
type Header struct {
	Magic        uint32         `atop:"magic"`
	Aversion     uint16         `atop:"aversion"`
	Future1      uint16         `atop:"future1"`
	Future2      uint16         `atop:"future2"`
	Rawheadlen   uint16         `atop:"rawheadlen"`
	Rawreclen    uint16         `atop:"rawreclen"`
	Hertz        uint16         `atop:"hertz"`
	Sfuture      [6]uint16      `atop:"sfuture"`
	Sstatlen     uint32         `atop:"sstatlen"`
	Tstatlen     uint32         `atop:"tstatlen"`
	Utsname      schema.UTSName `atop:"utsname"`
	Cfuture      [8]byte        `atop:"cfuture"`
	Pagesize     uint32         `atop:"pagesize"`
	Supportflags int32          `atop:"supportflags"`
	Osrel        int32          `atop:"osrel"`
	Osvers       int32          `atop:"osvers"`
	Ossub        int32          `atop:"ossub"`
	Ifuture      [6]int32       `atop:"ifuture"`
}

var _ schema.Header = (*Header)(nil)

func (h *Header) MagicNumber() uint32 { return h.Magic }

func (h *Header) EncodedVersion() uint16 { return h.Aversion }

func (h *Header) SemanticVersion() schema.Version { return schema.VersionOf(h.Aversion) }

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

// Record mirrors struct rawrecord (rawlog.h).
type Record struct {
	Curtime   int64     `atop:"curtime"`
	Flags     uint16    `atop:"flags"`
	Sfuture   [3]uint16 `atop:"sfuture"`
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
	Ifuture   [6]uint32 `atop:"ifuture"`
}

var _ schema.Record = (*Record)(nil)

func (r *Record) Timestamp() time.Time { return time.Unix(r.Curtime, 0) }

func (r *Record) SampleInterval() time.Duration { return time.Duration(r.Interval) * time.Second }

func (r *Record) SStatCompLen() int { return int(r.Scomplen) }

func (r *Record) TStatCompLen() int { return int(r.Pcomplen) }

func (r *Record) TaskCount() int { return int(r.Ndeviat) }

func (r *Record) CGroupCount() int { return 0 }

func (r *Record) CStatCompLen() int { return 0 }

func (r *Record) PidListCompLen() int { return 0 }
