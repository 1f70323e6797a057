package v2_11

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_4"
	"github.com/pyranha-labs/atoparser/schema/v2_7"
	"github.com/pyranha-labs/atoparser/schema/v2_8"
	"github.com/pyranha-labs/atoparser/schema/v2_10"
)

// MemStat mirrors struct memstat (photosyst.h); only the reserve grew since
// 2.10.
type MemStat struct {
	Physmem       int64    `atop:"physmem"`
	Freemem       int64    `atop:"freemem"`
	Buffermem     int64    `atop:"buffermem"`
	Slabmem       int64    `atop:"slabmem"`
	Cachemem      int64    `atop:"cachemem"`
	Cachedrt      int64    `atop:"cachedrt"`
	Totswap       int64    `atop:"totswap"`
	Freeswap      int64    `atop:"freeswap"`
	Pgscans       int64    `atop:"pgscans"`
	Pgsteal       int64    `atop:"pgsteal"`
	Allocstall    int64    `atop:"allocstall"`
	Swouts        int64    `atop:"swouts"`
	Swins         int64    `atop:"swins"`
	Tcpsock       int64    `atop:"tcpsock"`
	Udpsock       int64    `atop:"udpsock"`
	Commitlim     int64    `atop:"commitlim"`
	Committed     int64    `atop:"committed"`
	Shmem         int64    `atop:"shmem"`
	Shmrss        int64    `atop:"shmrss"`
	Shmswp        int64    `atop:"shmswp"`
	Slabreclaim   int64    `atop:"slabreclaim"`
	Stothugepage  int64    `atop:"stothugepage"`
	Sfreehugepage int64    `atop:"sfreehugepage"`
	Shugepagesz   int64    `atop:"shugepagesz"`
	Vmwballoon    int64    `atop:"vmwballoon"`
	Zfsarcsize    int64    `atop:"zfsarcsize"`
	Swapcached    int64    `atop:"swapcached"`
	Ksmsharing    int64    `atop:"ksmsharing"`
	Ksmshared     int64    `atop:"ksmshared"`
	Zswapped      int64    `atop:"zswapped"`
	Zswap         int64    `atop:"zswap"`
	Oomkills      int64    `atop:"oomkills"`
	Compactstall  int64    `atop:"compactstall"`
	Pgmigrate     int64    `atop:"pgmigrate"`
	Numamigrate   int64    `atop:"numamigrate"`
	Pgouts        int64    `atop:"pgouts"`
	Pgins         int64    `atop:"pgins"`
	Pagetables    int64    `atop:"pagetables"`
	Zswouts       int64    `atop:"zswouts"`
	Zswins        int64    `atop:"zswins"`
	Ltothugepage  int64    `atop:"ltothugepage"`
	Lfreehugepage int64    `atop:"lfreehugepage"`
	Lhugepagesz   int64    `atop:"lhugepagesz"`
	Availablemem  int64    `atop:"availablemem"`
	Anonhugepage  int64    `atop:"anonhugepage"`
	Cfuture       [5]int64 `atop:"cfuture"`
}

// MemPerNUMA mirrors struct mempernuma (photosyst.h) with a reserve appended.
type MemPerNUMA struct {
	Numanr      int32    `atop:"numanr"`
	Frag        float32  `atop:"frag"`
	Totmem      int64    `atop:"totmem"`
	Freemem     int64    `atop:"freemem"`
	Filepage    int64    `atop:"filepage"`
	Dirtymem    int64    `atop:"dirtymem"`
	Slabmem     int64    `atop:"slabmem"`
	Slabreclaim int64    `atop:"slabreclaim"`
	Active      int64    `atop:"active"`
	Inactive    int64    `atop:"inactive"`
	Shmem       int64    `atop:"shmem"`
	Tothp       int64    `atop:"tothp"`
	Freehp      int64    `atop:"freehp"`
	Cfuture     [2]int64 `atop:"cfuture"`
}

// MemNUMA mirrors struct memnuma (photosyst.h).
type MemNUMA struct {
	Nrnuma int64                    `atop:"nrnuma"`
	Numa   [v2_8.MaxNUMA]MemPerNUMA `atop:"numa,limiter=nrnuma"`
}

// CPUPerNUMA mirrors struct cpupernuma (photosyst.h) with a reserve appended.
type CPUPerNUMA struct {
	Numanr  int32    `atop:"numanr"`
	Nrcpu   int64    `atop:"nrcpu"`
	Stime   int64    `atop:"stime"`
	Utime   int64    `atop:"utime"`
	Ntime   int64    `atop:"ntime"`
	Itime   int64    `atop:"itime"`
	Wtime   int64    `atop:"wtime"`
	ITime   int64    `atop:"Itime"`
	STime   int64    `atop:"Stime"`
	Steal   int64    `atop:"steal"`
	Guest   int64    `atop:"guest"`
	Cfuture [2]int64 `atop:"cfuture"`
}

// CPUNUMA mirrors struct cpunuma (photosyst.h).
type CPUNUMA struct {
	Nrnuma int64                    `atop:"nrnuma"`
	Numa   [v2_8.MaxNUMA]CPUPerNUMA `atop:"numa,limiter=nrnuma"`
}

// PerIFB mirrors struct perifb (photosyst.h) with a reserve appended.
type PerIFB struct {
	Ibname  [v2_4.MaxIBName]byte `atop:"ibname"`
	Portnr  int16                `atop:"portnr"`
	Lanes   int16                `atop:"lanes"`
	Rate    int64                `atop:"rate"`
	Rcvb    int64                `atop:"rcvb"`
	Sndb    int64                `atop:"sndb"`
	Rcvp    int64                `atop:"rcvp"`
	Sndp    int64                `atop:"sndp"`
	Cfuture [4]int64             `atop:"cfuture"`
}

// IFBStat mirrors struct ifbstat (photosyst.h).
type IFBStat struct {
	Nrports int32                  `atop:"nrports"`
	Ifb     [v2_4.MaxIBPort]PerIFB `atop:"ifb,limiter=nrports"`
}

// Unchanged carryovers from earlier revisions.
type (
	FreqCnt      = v1_26.FreqCnt
	PerCPU       = v2_7.PerCPU
	CPUStat      = v2_7.CPUStat
	PerDSK       = v2_8.PerDSK
	DSKStat      = v2_8.DSKStat
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
	PerLLC       = v2_8.PerLLC
	LLCStat      = v2_8.LLCStat
	NETStat      = v2_10.NETStat
)

// SStat mirrors struct sstat (photosyst.h).
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
	Llc     LLCStat  `atop:"llc"`
	Www     WWWStat  `atop:"www"`
}

// Gen mirrors struct gen (photoproc.h). Tasks now reference their cgroup by
// chain index instead of carrying a path.
type Gen struct {
	Tgid        int32                  `atop:"tgid"`
	Pid         int32                  `atop:"pid"`
	Ppid        int32                  `atop:"ppid"`
	Ruid        int32                  `atop:"ruid"`
	Euid        int32                  `atop:"euid"`
	Suid        int32                  `atop:"suid"`
	Fsuid       int32                  `atop:"fsuid"`
	Rgid        int32                  `atop:"rgid"`
	Egid        int32                  `atop:"egid"`
	Sgid        int32                  `atop:"sgid"`
	Fsgid       int32                  `atop:"fsgid"`
	Nthr        int32                  `atop:"nthr"`
	Name        [v2_3.PNamLen + 1]byte `atop:"name"`
	Isproc      byte                   `atop:"isproc"`
	State       byte                   `atop:"state"`
	Excode      int32                  `atop:"excode"`
	Btime       int64                  `atop:"btime"`
	Elaps       int64                  `atop:"elaps"`
	Cmdline     [v2_3.CmdLen + 1]byte  `atop:"cmdline"`
	Nthrslpi    int32                  `atop:"nthrslpi"`
	Nthrslpu    int32                  `atop:"nthrslpu"`
	Nthrrun     int32                  `atop:"nthrrun"`
	Nthridle    int32                  `atop:"nthridle"`
	Ctid        int32                  `atop:"ctid"`
	Vpid        int32                  `atop:"vpid"`
	Wasinactive int32                  `atop:"wasinactive"`
	Utsname     [v2_10.UTSLen + 1]byte `atop:"utsname"`
	Cgroupix    int32                  `atop:"cgroupix"`
	Ifuture     [4]int32               `atop:"ifuture"`
}

// CPU mirrors struct cpu (photoproc.h); the cgroup CPU limits moved into the
// cgroup chain, freeing their slots back to the reserve.
type CPU struct {
	Utime    int64    `atop:"utime"`
	Stime    int64    `atop:"stime"`
	Nice     int32    `atop:"nice"`
	Prio     int32    `atop:"prio"`
	Rtprio   int32    `atop:"rtprio"`
	Policy   int32    `atop:"policy"`
	Curcpu   int32    `atop:"curcpu"`
	Sleepavg int32    `atop:"sleepavg"`
	Ifuture  [6]int32 `atop:"ifuture"`
	Wchan    [16]byte `atop:"wchan"`
	Rundelay int64    `atop:"rundelay"`
	Blkdelay int64    `atop:"blkdelay"`
	Nvcsw    int64    `atop:"nvcsw"`
	Nivcsw   int64    `atop:"nivcsw"`
	Cfuture  [3]int64 `atop:"cfuture"`
}

// MEM mirrors struct mem (photoproc.h); the cgroup memory limits moved into
// the cgroup chain.
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
	Cfuture [7]int64 `atop:"cfuture"`
}

// GPU mirrors struct gpu (photoproc.h) with a reserve appended.
type GPU struct {
	State   byte     `atop:"state"`
	Bfuture [3]byte  `atop:"bfuture"`
	Nrgpus  int16    `atop:"nrgpus"`
	Gpulist int32    `atop:"gpulist"`
	Gpubusy int32    `atop:"gpubusy"`
	Membusy int32    `atop:"membusy"`
	Timems  int64    `atop:"timems"`
	Memnow  int64    `atop:"memnow"`
	Memcum  int64    `atop:"memcum"`
	Sample  int64    `atop:"sample"`
	Cfuture [3]int64 `atop:"cfuture"`
}

// Per-task carryovers from earlier revisions.
type (
	DSK = v1_26.DSK
	NET = v2_3.NET
)

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
		Version:      schema.Version{Major: 2, Minor: 11},
		HeaderSize:   cstruct.SizeOf[Header](),
		RecordSize:   cstruct.SizeOf[Record](),
		SStatSize:    cstruct.SizeOf[SStat](),
		TStatSize:    cstruct.SizeOf[TStat](),
		CStatSize:    cstruct.SizeOf[CStat](),
		DecodeHeader: schema.HeaderDecoder[Header](),
		ReadRecord:   schema.RecordReader[Record](),
		DecodeSStat:  schema.StatDecoder[SStat](),
		DecodeTStat:  schema.StatDecoder[TStat](),
		DecodeCStat:  schema.CStatDecoder[CStat](),
	})
}
