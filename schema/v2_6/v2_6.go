// Package v2_6 mirrors the on-disk layout written by atop 2.6, which extends
// the memory counters with ZFS ARC and swap cache sizes and adds wait-channel
// and run-delay tracking to per-task CPU usage.
package v2_6

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_4"
)

// Header and Record carry over unchanged from 2.3.
type (
	Header = v2_3.Header
	Record = v2_3.Record
)

// MemStat mirrors struct memstat (photosyst.h).
type MemStat struct {
	Physmem      int64    `atop:"physmem"`
	Freemem      int64    `atop:"freemem"`
	Buffermem    int64    `atop:"buffermem"`
	Slabmem      int64    `atop:"slabmem"`
	Cachemem     int64    `atop:"cachemem"`
	Cachedrt     int64    `atop:"cachedrt"`
	Totswap      int64    `atop:"totswap"`
	Freeswap     int64    `atop:"freeswap"`
	Pgscans      int64    `atop:"pgscans"`
	Pgsteal      int64    `atop:"pgsteal"`
	Allocstall   int64    `atop:"allocstall"`
	Swouts       int64    `atop:"swouts"`
	Swins        int64    `atop:"swins"`
	Commitlim    int64    `atop:"commitlim"`
	Committed    int64    `atop:"committed"`
	Shmem        int64    `atop:"shmem"`
	Shmrss       int64    `atop:"shmrss"`
	Shmswp       int64    `atop:"shmswp"`
	Slabreclaim  int64    `atop:"slabreclaim"`
	Tothugepage  int64    `atop:"tothugepage"`
	Freehugepage int64    `atop:"freehugepage"`
	Hugepagesz   int64    `atop:"hugepagesz"`
	Vmwballoon   int64    `atop:"vmwballoon"`
	Zfsarcsize   int64    `atop:"zfsarcsize"`
	Swapcached   int64    `atop:"swapcached"`
	Cfuture      [6]int64 `atop:"cfuture"`
}

// Unchanged carryovers from earlier revisions.
type (
	FreqCnt      = v1_26.FreqCnt
	PerCPU       = v2_4.PerCPU
	CPUStat      = v2_4.CPUStat
	PerDSK       = v2_3.PerDSK
	DSKStat      = v2_3.DSKStat
	PerIntf      = v2_3.PerIntf
	IntfStat     = v2_3.IntfStat
	PerNFSMount  = v2_3.PerNFSMount
	Server       = v2_3.Server
	Client       = v2_3.Client
	NFSMounts    = v2_3.NFSMounts
	NFSStat      = v2_3.NFSStat
	PSI          = v2_4.PSI
	Pressure     = v2_4.Pressure
	PerContainer = v2_3.PerContainer
	ContStat     = v2_3.ContStat
	WWWStat      = v1_26.WWWStat
	PerGPU       = v2_4.PerGPU
	GPUStat      = v2_4.GPUStat
	PerIFB       = v2_4.PerIFB
	IFBStat      = v2_4.IFBStat
	NETStat      = v1_26.NETStat
)

// SStat mirrors struct sstat (photosyst.h).
type SStat struct {
	Cpu  CPUStat  `atop:"cpu"`
	Mem  MemStat  `atop:"mem"`
	Net  NETStat  `atop:"net"`
	Intf IntfStat `atop:"intf"`
	Dsk  DSKStat  `atop:"dsk"`
	Nfs  NFSStat  `atop:"nfs"`
	Cfs  ContStat `atop:"cfs"`
	Psi  Pressure `atop:"psi"`
	Gpu  GPUStat  `atop:"gpu"`
	Ifb  IFBStat  `atop:"ifb"`
	Www  WWWStat  `atop:"www"`
}

// Per-task carryovers from earlier revisions.
type (
	Gen = v2_3.Gen
	DSK = v1_26.DSK
	NET = v2_3.NET
	GPU = v2_4.GPU
)

// CPU mirrors struct cpu (photoproc.h), extended with the wait channel and
// scheduler run delay since 2.4.
type CPU struct {
	Utime    int64    `atop:"utime"`
	Stime    int64    `atop:"stime"`
	Nice     int32    `atop:"nice"`
	Prio     int32    `atop:"prio"`
	Rtprio   int32    `atop:"rtprio"`
	Policy   int32    `atop:"policy"`
	Curcpu   int32    `atop:"curcpu"`
	Sleepavg int32    `atop:"sleepavg"`
	Ifuture  [4]int32 `atop:"ifuture"`
	Wchan    [16]byte `atop:"wchan"`
	Rundelay int64    `atop:"rundelay"`
	Cfuture  [1]int64 `atop:"cfuture"`
}

// MEM mirrors struct mem (photoproc.h), extended with locked memory.
type MEM struct {
	Minflt  int64    `atop:"minflt"`
	Majflt  int64    `atop:"majflt"`
	Vexec   int64    `atop:"vexec"`
	Vmem    int64    `atop:"vmem"`
	Rmem    int64    `atop:"rmem"`
	Pmem    int64    `atop:"pmem"`
	Vgrow   int64    `atop:"vgrow"`
	Rgrow   int64    `atop:"rgrow"`
	Vdata   int64    `atop:"vdata"`
	Vstack  int64    `atop:"vstack"`
	Vlibs   int64    `atop:"vlibs"`
	Vswap   int64    `atop:"vswap"`
	Vlock   int64    `atop:"vlock"`
	Cfuture [3]int64 `atop:"cfuture"`
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
		Version:      schema.Version{Major: 2, Minor: 6},
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
