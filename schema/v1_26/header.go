// Package v1_26 mirrors the on-disk layout written by atop 1.26, the oldest
// supported revision. It is the only revision that names the per-task struct
// PStat and frames it with a pstatlen header field.
//
// Struct fields keep their original C declaration order so that native
// alignment reproduces the exact on-disk layout. The atop tag on each field
// carries the original C member name.
package v1_26

import (
	"time"

	"github.com/pyranha-labs/atoparser/schema"
)

// Capacity limits compiled into atop 1.26 (photosyst.h, photoproc.h).
const (
	MaxCPU   = 64
	MaxDsk   = 256
	MaxLvm   = 256
	MaxMdd   = 128
	MaxIntf  = 32
	MaxDkNam = 32
	PNamLen  = 15
	CmdLen   = 150
)

// Header mirrors struct rawheader (rawlog.c).
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
	Pstatlen     uint32         `atop:"pstatlen"`
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
		{Name: "PStat", Declared: int(h.Pstatlen)},
	}
}

func (h *Header) HostName() string { return schema.CString(h.Utsname.Nodename[:]) }

func (h *Header) Release() string { return schema.CString(h.Utsname.Release[:]) }

func (h *Header) TicksPerSecond() int { return int(h.Hertz) }

func (h *Header) PageSize() int { return int(h.Pagesize) }

func (h *Header) SupportFlags() int32 { return h.Supportflags }

// Record mirrors struct rawrecord (rawlog.c). The task counters use the 1.26
// naming (nlist, npresent) rather than the ndeviat family of 2.x records.
type Record struct {
	Curtime  int64     `atop:"curtime"`
	Flags    uint16    `atop:"flags"`
	Sfuture  [3]uint16 `atop:"sfuture"`
	Scomplen uint32    `atop:"scomplen"`
	Pcomplen uint32    `atop:"pcomplen"`
	Interval uint32    `atop:"interval"`
	Nlist    uint32    `atop:"nlist"`
	Npresent uint32    `atop:"npresent"`
	Nexit    uint32    `atop:"nexit"`
	Ntrun    uint32    `atop:"ntrun"`
	Ntslpi   uint32    `atop:"ntslpi"`
	Ntslpu   uint32    `atop:"ntslpu"`
	Nzombie  uint32    `atop:"nzombie"`
	Ifuture  [6]uint32 `atop:"ifuture"`
}

var _ schema.Record = (*Record)(nil)

func (r *Record) Timestamp() time.Time { return time.Unix(r.Curtime, 0) }

func (r *Record) SampleInterval() time.Duration { return time.Duration(r.Interval) * time.Second }

func (r *Record) SStatCompLen() int { return int(r.Scomplen) }

func (r *Record) TStatCompLen() int { return int(r.Pcomplen) }

func (r *Record) TaskCount() int { return int(r.Nlist) }

func (r *Record) CGroupCount() int { return 0 }

func (r *Record) CStatCompLen() int { return 0 }

func (r *Record) PidListCompLen() int { return 0 }
