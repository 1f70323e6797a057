// Package v2_4 mirrors the on-disk layout written by atop 2.4, which adds
// pressure stall information, GPU, and InfiniBand statistics. Atop 2.5 kept
// the layout unchanged.
package v2_4

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
)

// Capacity limits introduced by atop 2.4 (photosyst.h).
const (
	MaxIBPort  = 32
	MaxGPU     = 32
	MaxGPUBus  = 12
	MaxGPUType = 12
	MaxIBName  = 12
	MaxCPU     = v2_3.MaxCPU
)

// Header and Record carry over unchanged from 2.3.
type (
	Header = v2_3.Header
	Record = v2_3.Record
)

// FreqCnt carries over unchanged from 1.26.
type FreqCnt = v1_26.FreqCnt

// PerCPU mirrors struct percpu (photosyst.h), extended with instruction and
// cycle counters since 2.3.
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
	Cfuture [2]int64 `atop:"cfuture"`
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

// PSI mirrors struct psi (photosyst.h): one pressure stall line.
type PSI struct {
	Avg10  float32 `atop:"avg10"`
	Avg60  float32 `atop:"avg60"`
	Avg300 float32 `atop:"avg300"`
	Total  int64   `atop:"total"`
}

// Pressure mirrors struct pressure (photosyst.h).
type Pressure struct {
	Present byte    `atop:"present"`
	Future  [3]byte `atop:"future"`
	Cpusome PSI     `atop:"cpusome"`
	Memsome PSI     `atop:"memsome"`
	Memfull PSI     `atop:"memfull"`
	Iosome  PSI     `atop:"iosome"`
	Iofull  PSI     `atop:"iofull"`
}

// PerGPU mirrors struct pergpu (photosyst.h). The nrprocs field is a numeric
// byte rather than a character, marked by the num tag option.
type PerGPU struct {
	Taskstats  byte                 `atop:"taskstats"`
	Nrprocs    uint8                `atop:"nrprocs,num"`
	Type       [MaxGPUType + 1]byte `atop:"type"`
	Busid      [MaxGPUBus + 1]byte  `atop:"busid"`
	Gpunr      int32                `atop:"gpunr"`
	Gpupercnow int32                `atop:"gpupercnow"`
	Mempercnow int32                `atop:"mempercnow"`
	Memtotnow  int64                `atop:"memtotnow"`
	Memusenow  int64                `atop:"memusenow"`
	Samples    int64                `atop:"samples"`
	Gpuperccum int64                `atop:"gpuperccum"`
	Memperccum int64                `atop:"memperccum"`
	Memusecum  int64                `atop:"memusecum"`
}

// GPUStat mirrors struct gpustat (photosyst.h).
type GPUStat struct {
	Nrgpus int32          `atop:"nrgpus"`
	Gpu    [MaxGPU]PerGPU `atop:"gpu,limiter=nrgpus"`
}

// PerIFB mirrors struct perifb (photosyst.h).
type PerIFB struct {
	Ibname [MaxIBName]byte `atop:"ibname"`
	Portnr int16           `atop:"portnr"`
	Lanes  int16           `atop:"lanes"`
	Rate   int64           `atop:"rate"`
	Rcvb   int64           `atop:"rcvb"`
	Sndb   int64           `atop:"sndb"`
	Rcvp   int64           `atop:"rcvp"`
	Sndp   int64           `atop:"sndp"`
}

// IFBStat mirrors struct ifbstat (photosyst.h).
type IFBStat struct {
	Nrports int32             `atop:"nrports"`
	Ifb     [MaxIBPort]PerIFB `atop:"ifb,limiter=nrports"`
}

// Unchanged carryovers from earlier revisions.
type (
	MemStat      = v2_3.MemStat
	PerDSK       = v2_3.PerDSK
	DSKStat      = v2_3.DSKStat
	PerIntf      = v2_3.PerIntf
	IntfStat     = v2_3.IntfStat
	PerNFSMount  = v2_3.PerNFSMount
	Server       = v2_3.Server
	Client       = v2_3.Client
	NFSMounts    = v2_3.NFSMounts
	NFSStat      = v2_3.NFSStat
	PerContainer = v2_3.PerContainer
	ContStat     = v2_3.ContStat
	NETStat      = v1_26.NETStat
	WWWStat      = v1_26.WWWStat
)

// SStat mirrors struct sstat (photosyst.h) with the pressure, GPU, and
// InfiniBand groups added since 2.3.
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
	CPU = v1_26.CPU
	DSK = v1_26.DSK
	MEM = v2_3.MEM
	NET = v2_3.NET
)

// GPU mirrors struct gpu (photoproc.h), the per-task GPU usage added in 2.4.
type GPU struct {
	State   byte    `atop:"state"`
	Cfuture [3]byte `atop:"cfuture"`
	Nrgpus  int16   `atop:"nrgpus"`
	Gpulist int32   `atop:"gpulist"`
	Gpubusy int32   `atop:"gpubusy"`
	Membusy int32   `atop:"membusy"`
	Timems  int64   `atop:"timems"`
	Memnow  int64   `atop:"memnow"`
	Memcum  int64   `atop:"memcum"`
	Sample  int64   `atop:"sample"`
}

// TStat mirrors struct tstat (photoproc.h) with the GPU group appended.
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
		Version:      schema.Version{Major: 2, Minor: 4},
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
