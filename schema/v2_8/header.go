// Package v2_8 mirrors the on-disk layout written by atop 2.8, which adds
// cgroup-v2 limits to per-task stats, last-level-cache statistics, and a pid
// width field in the header.
package v2_8

import (
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
)

// Capacity limits compiled into atop 2.8 (photosyst.h, photoproc.h).
const (
	MaxLLC  = 256
	CGrLen  = 64
	MaxNUMA = 1024
)

// Header mirrors struct rawheader (rawlog.h); one reserved short became the
// pid width of the producing system.
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

// Record carries over unchanged from 2.3.
type Record = v2_3.Record
