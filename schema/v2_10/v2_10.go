// Package v2_10 mirrors the on-disk layout written by atop 2.10, which splits
// static and large huge page accounting, adds zswap activity, and replaces the
// per-task container name with a uts namespace name.
package v2_10

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_4"
	"github.com/pyranha-labs/atoparser/schema/v2_8"
)

// UTSLen is the per-task uts namespace name length (photoproc.h).
const UTSLen = 15

// Header and Record carry over unchanged from earlier revisions.
type (
	Header = v2_8.Header
	Record = v2_3.Record
)

// MemStat mirrors struct memstat (photosyst.h). Huge page accounting is split
// into small and large page sizes and zswap gains in/out counters.
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
	Cfuture       [4]int64 `atop:"cfuture"`
}

// MemPerNUMA mirrors struct mempernuma (photosyst.h), extended with free huge
// pages since 2.8.
type MemPerNUMA struct {
	Numanr      int32   `atop:"numanr"`
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
	Freehp      int64   `atop:"freehp"`
}

// MemNUMA mirrors struct memnuma (photosyst.h).
type MemNUMA struct {
	Nrnuma int64                    `atop:"nrnuma"`
	Numa   [v2_8.MaxNUMA]MemPerNUMA `atop:"numa,limiter=nrnuma"`
}

// TCPStats mirrors the tcp SNMP counter group (netstats.h), extended with
// checksum error tracking since 1.26.
type TCPStats struct {
	RtoAlgorithm int64 `atop:"RtoAlgorithm"`
	RtoMin       int64 `atop:"RtoMin"`
	RtoMax       int64 `atop:"RtoMax"`
	MaxConn      int64 `atop:"MaxConn"`
	ActiveOpens  int64 `atop:"ActiveOpens"`
	PassiveOpens int64 `atop:"PassiveOpens"`
	AttemptFails int64 `atop:"AttemptFails"`
	EstabResets  int64 `atop:"EstabResets"`
	CurrEstab    int64 `atop:"CurrEstab"`
	InSegs       int64 `atop:"InSegs"`
	OutSegs      int64 `atop:"OutSegs"`
	RetransSegs  int64 `atop:"RetransSegs"`
	InErrs       int64 `atop:"InErrs"`
	OutRsts      int64 `atop:"OutRsts"`
	InCsumErrors int64 `atop:"InCsumErrors"`
}

// NETStat mirrors struct netstat (photosyst.h) with the updated tcp group.
type NETStat struct {
	Ipv4   v1_26.IPv4Stats   `atop:"ipv4"`
	Icmpv4 v2_8.ICMPv4Stats  `atop:"icmpv4"`
	Udpv4  v1_26.UDPv4Stats  `atop:"udpv4"`
	Ipv6   v1_26.IPv6Stats   `atop:"ipv6"`
	Icmpv6 v1_26.ICMPv6Stats `atop:"icmpv6"`
	Udpv6  v1_26.UDPv6Stats  `atop:"udpv6"`
	Tcp    TCPStats          `atop:"tcp"`
}

// Unchanged carryovers from earlier revisions.
type (
	CPUPerNUMA   = v2_8.CPUPerNUMA
	CPUNUMA      = v2_8.CPUNUMA
	FreqCnt      = v1_26.FreqCnt
	PerCPU       = v2_8.PerCPU
	CPUStat      = v2_8.CPUStat
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
	PerIFB       = v2_4.PerIFB
	IFBStat      = v2_4.IFBStat
	PerLLC       = v2_8.PerLLC
	LLCStat      = v2_8.LLCStat
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

// Gen mirrors struct gen (photoproc.h). Idle threads are now counted and the
// container name gives way to the uts namespace name.
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
	Utsname     [UTSLen + 1]byte       `atop:"utsname"`
	Cgpath      [v2_8.CGrLen]byte      `atop:"cgpath"`
}

// CPU mirrors struct cpu (photoproc.h).
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
	Cfuture     [3]int64 `atop:"cfuture"`
}

// Per-task carryovers from earlier revisions.
type (
	DSK = v1_26.DSK
	MEM = v2_8.MEM
	NET = v2_3.NET
	GPU = v2_4.GPU
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
		Version:      schema.Version{Major: 2, Minor: 10},
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
