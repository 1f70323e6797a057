// Package v2_9 mirrors the on-disk layout written by atop 2.9. The system
// statistics carry over from 2.8; per-task CPU usage gains voluntary and
// involuntary context switch counters.
package v2_9

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_4"
	"github.com/pyranha-labs/atoparser/schema/v2_8"
)

// Carryovers from earlier revisions.
type (
	Header = v2_8.Header
	Record = v2_3.Record
	SStat  = v2_8.SStat
	Gen    = v2_8.Gen
	DSK    = v1_26.DSK
	MEM    = v2_8.MEM
	NET    = v2_3.NET
	GPU    = v2_4.GPU
)

// CPU mirrors struct cpu (photoproc.h), extended with context switch counters
// since 2.8.
type CPU struct {
	Utime       int64    `atop:"utime"`
	Stime       int64    `atop:"stime"`
	Nice        int32    `atop:"nice"`
	Prio        int32    `atop:"prio"`
	Rtprio      int32    `atop:"rtprio"`
	Policy      int32    `atop:"policy"`
	Curcpu      int32    `atop:"curcpu"`
	Sleepavg    int32    `atop:"sleepavg"`
	Cgcpuweight int32    `atop:"cgcpuweight"`
	Cgcpumax    int32    `atop:"cgcpumax"`
	Cgcpumaxr   int32    `atop:"cgcpumaxr"`
	Ifuture     [3]int32 `atop:"ifuture"`
	Wchan       [16]byte `atop:"wchan"`
	Rundelay    int64    `atop:"rundelay"`
	Blkdelay    int64    `atop:"blkdelay"`
	Nvcsw       int64    `atop:"nvcsw"`
	Nivcsw      int64    `atop:"nivcsw"`
	Cfuture     [1]int64 `atop:"cfuture"`
}

// TStat mirrors struct tstat (photoproc.h).
type TStat struct {
	Gen Gen `atop:"gen"`
	Cpu CPU `atop:"cpu"`
	Dsk DSK `atop:"dsk"`
	Mem MEM `atop:"mem"`
	Net NET `atop:"net"`
	Gpu GPU `atop:"gpu"`
}

func init() {
	schema.Register(&schema.Descriptor{
		Version:      schema.Version{Major: 2, Minor: 9},
		HeaderSize:   cstruct.SizeOf[Header](),
		RecordSize:   cstruct.SizeOf[Record](),
		SStatSize:    cstruct.SizeOf[SStat](),
		TStatSize:    cstruct.SizeOf[TStat](),
		DecodeHeader: schema.HeaderDecoder[Header](),
		ReadRecord:   schema.RecordReader[Record](),
		DecodeSStat:  schema.StatDecoder[SStat](),
		DecodeTStat:  schema.StatDecoder[TStat](),
	})
}
