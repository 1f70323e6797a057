// Package v2_7 mirrors the on-disk layout written by atop 2.7, which adds
// per-NUMA-node memory and CPU statistics and discard counters for disks.
package v2_7

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_4"
	"github.com/pyranha-labs/atoparser/schema/v2_6"
)

// Capacity limits compiled into atop 2.7 (photosyst.h).
const (
	MaxNUMA  = 1024
	MaxCPU   = v2_3.MaxCPU
	MaxDsk   = v2_3.MaxDsk
	MaxLvm   = v2_3.MaxLvm
	MaxMdd   = v2_3.MaxMdd
	MaxDkNam = v2_3.MaxDkNam
)

// Header and Record carry over unchanged from 2.3.
type (
	Header = v2_3.Header
	Record = v2_3.Record
)

// MemStat mirrors struct memstat (photosyst.h), extended with KSM, zswap,
// out-of-memory kill, and page migration counters since 2.6.
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
	Ksmsharing   int64    `atop:"ksmsharing"`
	Ksmshared    int64    `atop:"ksmshared"`
	Zswstored    int64    `atop:"zswstored"`
	Zswtotpool   int64    `atop:"zswtotpool"`
	Oomkills     int64    `atop:"oomkills"`
	Compactstall int64    `atop:"compactstall"`
	Pgmigrate    int64    `atop:"pgmigrate"`
	Numamigrate  int64    `atop:"numamigrate"`
	Cfuture      [9]int64 `atop:"cfuture"`
}

// MemPerNUMA mirrors struct mempernuma (photosyst.h).
type MemPerNUMA struct {
	Frag        float32 `atop:"frag"`
	Totmem      int64   `atop:"totmem"`
	Freemem     int64   `atop:"freemem"`
	Filepage    int64   `atop:"filepage"`
	Dirtymem    int64   `atop:"dirtymem"`
	Slabmem     int64   `atop:"slabmem"`
	Slabreclaim int64   `atop:"slabreclaim"`
	Active      int64   `atop:"active"`
	Inactive    int64   `atop:"inactive"`
	Shmem       int64   `atop:"shmem"`
	Tothp       int64   `atop:"tothp"`
}

// MemNUMA mirrors struct memnuma (photosyst.h).
type MemNUMA struct {
	Nrnuma int64               `atop:"nrnuma"`
	Numa   [MaxNUMA]MemPerNUMA `atop:"numa,limiter=nrnuma"`
}

// CPUPerNUMA mirrors struct cpupernuma (photosyst.h).
type CPUPerNUMA struct {
	Nrcpu int64 `atop:"nrcpu"`
	Stime int64 `atop:"stime"`
	Utime int64 `atop:"utime"`
	Ntime int64 `atop:"ntime"`
	Itime int64 `atop:"itime"`
	Wtime int64 `atop:"wtime"`
	ITime int64 `atop:"Itime"`
	STime int64 `atop:"Stime"`
	Steal int64 `atop:"steal"`
	Guest int64 `atop:"guest"`
}

// CPUNUMA mirrors struct cpunuma (photosyst.h).
type CPUNUMA struct {
	Nrnuma int64               `atop:"nrnuma"`
	Numa   [MaxNUMA]CPUPerNUMA `atop:"numa,limiter=nrnuma"`
}

// FreqCnt carries over unchanged from 1.26.
type FreqCnt = v1_26.FreqCnt

// PerCPU mirrors struct percpu (photosyst.h); the trailing reserve grew from
// two to six counters since 2.4.
type PerCPU struct {
	Cpunr   int32    `atop:"cpunr"`
	Stime   int64    `atop:"stime"`
	Utime   int64    `atop:"utime"`
	Ntime   int64    `atop:"ntime"`
	Itime   int64    `atop:"itime"`
	Wtime   int64    `atop:"wtime"`
	ITime   int64    `atop:"Itime"`
	STime   int64    `atop:"Stime"`
	Steal   int64    `atop:"steal"`
	Guest   int64    `atop:"guest"`
	Freqcnt FreqCnt  `atop:"freqcnt"`
	Instr   int64    `atop:"instr"`
	Cycle   int64    `atop:"cycle"`
	Cfuture [6]int64 `atop:"cfuture"`
}

// CPUStat mirrors struct cpustat (photosyst.h).
type CPUStat struct {
	Nrcpu   int64          `atop:"nrcpu"`
	Devint  int64          `atop:"devint"`
	Csw     int64          `atop:"csw"`
	Nprocs  int64          `atop:"nprocs"`
	Lavg1   float32        `atop:"lavg1"`
	Lavg5   float32        `atop:"lavg5"`
	Lavg15  float32        `atop:"lavg15"`
	Cfuture [4]int64       `atop:"cfuture"`
	All     PerCPU         `atop:"all"`
	Cpu     [MaxCPU]PerCPU `atop:"cpu,limiter=nrcpu"`
}

// PerDSK mirrors struct perdsk (photosyst.h), extended with discard counters
// since 2.3.
type PerDSK struct {
	Name    [MaxDkNam]byte `atop:"name"`
	Nread   int64          `atop:"nread"`
	Nrsect  int64          `atop:"nrsect"`
	Nwrite  int64          `atop:"nwrite"`
	Nwsect  int64          `atop:"nwsect"`
	IoMs    int64          `atop:"io_ms"`
	Avque   int64          `atop:"avque"`
	Ndisc   int64          `atop:"ndisc"`
	Ndsect  int64          `atop:"ndsect"`
	Cfuture [2]int64       `atop:"cfuture"`
}

// DSKStat mirrors struct dskstat (photosyst.h).
type DSKStat struct {
	Ndsk int32          `atop:"ndsk"`
	Nmdd int32          `atop:"nmdd"`
	Nlvm int32          `atop:"nlvm"`
	Dsk  [MaxDsk]PerDSK `atop:"dsk,limiter=ndsk"`
	Mdd  [MaxMdd]PerDSK `atop:"mdd,limiter=nmdd"`
	Lvm  [MaxLvm]PerDSK `atop:"lvm,limiter=nlvm"`
}

// Unchanged carryovers from earlier revisions.
type (
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

// SStat mirrors struct sstat (photosyst.h) with the NUMA groups added.
type SStat struct {
	Cpu     CPUStat  `atop:"cpu"`
	Mem     MemStat  `atop:"mem"`
	Net     NETStat  `atop:"net"`
	Intf    IntfStat `atop:"intf"`
	Memnuma MemNUMA  `atop:"memnuma"`
	Cpunuma CPUNUMA  `atop:"cpunuma"`
	Dsk     DSKStat  `atop:"dsk"`
	Nfs     NFSStat  `atop:"nfs"`
	Cfs     ContStat `atop:"cfs"`
	Psi     Pressure `atop:"psi"`
	Gpu     GPUStat  `atop:"gpu"`
	Ifb     IFBStat  `atop:"ifb"`
	Www     WWWStat  `atop:"www"`
}

// The per-task layout carries over unchanged from 2.6.
type (
	Gen   = v2_3.Gen
	CPU   = v2_6.CPU
	DSK   = v1_26.DSK
	MEM   = v2_6.MEM
	NET   = v2_3.NET
	GPU   = v2_4.GPU
	TStat = v2_6.TStat
)

func init() {
	schema.Register(&schema.Descriptor{
		Version:      schema.Version{Major: 2, Minor: 7},
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
