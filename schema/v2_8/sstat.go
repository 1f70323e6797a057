package v2_8

import (
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_4"
	"github.com/pyranha-labs/atoparser/schema/v2_7"
)

// MemStat mirrors struct memstat (photosyst.h), extended with socket memory
// and page in/out counters since 2.7.
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
	Tcpsock      int64    `atop:"tcpsock"`
	Udpsock      int64    `atop:"udpsock"`
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
	Pgouts       int64    `atop:"pgouts"`
	Pgins        int64    `atop:"pgins"`
	Pagetables   int64    `atop:"pagetables"`
	Cfuture      [4]int64 `atop:"cfuture"`
}

// MemPerNUMA mirrors struct mempernuma (photosyst.h); the node number is now
// recorded explicitly.
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
}

// MemNUMA mirrors struct memnuma (photosyst.h).
type MemNUMA struct {
	Nrnuma int64               `atop:"nrnuma"`
	Numa   [MaxNUMA]MemPerNUMA `atop:"numa,limiter=nrnuma"`
}

// CPUPerNUMA mirrors struct cpupernuma (photosyst.h).
type CPUPerNUMA struct {
	Numanr int32 `atop:"numanr"`
	Nrcpu  int64 `atop:"nrcpu"`
	Stime  int64 `atop:"stime"`
	Utime  int64 `atop:"utime"`
	Ntime  int64 `atop:"ntime"`
	Itime  int64 `atop:"itime"`
	Wtime  int64 `atop:"wtime"`
	ITime  int64 `atop:"Itime"`
	STime  int64 `atop:"Stime"`
	Steal  int64 `atop:"steal"`
	Guest  int64 `atop:"guest"`
}

// CPUNUMA mirrors struct cpunuma (photosyst.h).
type CPUNUMA struct {
	Nrnuma int64               `atop:"nrnuma"`
	Numa   [MaxNUMA]CPUPerNUMA `atop:"numa,limiter=nrnuma"`
}

// PerDSK mirrors struct perdsk (photosyst.h), extended with the in-flight
// request gauge since 2.7.
type PerDSK struct {
	Name     [v2_7.MaxDkNam]byte `atop:"name"`
	Nread    int64               `atop:"nread"`
	Nrsect   int64               `atop:"nrsect"`
	Nwrite   int64               `atop:"nwrite"`
	Nwsect   int64               `atop:"nwsect"`
	IoMs     int64               `atop:"io_ms"`
	Avque    int64               `atop:"avque"`
	Ndisc    int64               `atop:"ndisc"`
	Ndsect   int64               `atop:"ndsect"`
	Inflight int64               `atop:"inflight"`
	Cfuture  [3]int64            `atop:"cfuture"`
}

// DSKStat mirrors struct dskstat (photosyst.h).
type DSKStat struct {
	Ndsk int32               `atop:"ndsk"`
	Nmdd int32               `atop:"nmdd"`
	Nlvm int32               `atop:"nlvm"`
	Dsk  [v2_7.MaxDsk]PerDSK `atop:"dsk,limiter=ndsk"`
	Mdd  [v2_7.MaxMdd]PerDSK `atop:"mdd,limiter=nmdd"`
	Lvm  [v2_7.MaxLvm]PerDSK `atop:"lvm,limiter=nlvm"`
}

// PerLLC mirrors struct perllc (photosyst.h). The id field is a numeric byte.
type PerLLC struct {
	ID        uint8   `atop:"id,num"`
	Occupancy float32 `atop:"occupancy"`
	MbmLocal  int64   `atop:"mbm_local"`
	MbmTotal  int64   `atop:"mbm_total"`
}

// LLCStat mirrors struct llcstat (photosyst.h).
type LLCStat struct {
	Nrllcs int32          `atop:"nrllcs"`
	Perllc [MaxLLC]PerLLC `atop:"perllc,limiter=nrllcs"`
}

// ICMPv4Stats mirrors the icmpv4 SNMP counter group (netstats.h), extended
// with checksum error tracking since 1.26.
type ICMPv4Stats struct {
	InMsgs           int64 `atop:"InMsgs"`
	InErrors         int64 `atop:"InErrors"`
	InCsumErrors     int64 `atop:"InCsumErrors"`
	InDestUnreachs   int64 `atop:"InDestUnreachs"`
	InTimeExcds      int64 `atop:"InTimeExcds"`
	InParmProbs      int64 `atop:"InParmProbs"`
	InSrcQuenchs     int64 `atop:"InSrcQuenchs"`
	InRedirects      int64 `atop:"InRedirects"`
	InEchos          int64 `atop:"InEchos"`
	InEchoReps       int64 `atop:"InEchoReps"`
	InTimestamps     int64 `atop:"InTimestamps"`
	InTimestampReps  int64 `atop:"InTimestampReps"`
	InAddrMasks      int64 `atop:"InAddrMasks"`
	InAddrMaskReps   int64 `atop:"InAddrMaskReps"`
	OutMsgs          int64 `atop:"OutMsgs"`
	OutErrors        int64 `atop:"OutErrors"`
	OutDestUnreachs  int64 `atop:"OutDestUnreachs"`
	OutTimeExcds     int64 `atop:"OutTimeExcds"`
	OutParmProbs     int64 `atop:"OutParmProbs"`
	OutSrcQuenchs    int64 `atop:"OutSrcQuenchs"`
	OutRedirects     int64 `atop:"OutRedirects"`
	OutEchos         int64 `atop:"OutEchos"`
	OutEchoReps      int64 `atop:"OutEchoReps"`
	OutTimestamps    int64 `atop:"OutTimestamps"`
	OutTimestampReps int64 `atop:"OutTimestampReps"`
	OutAddrMasks     int64 `atop:"OutAddrMasks"`
	OutAddrMaskReps  int64 `atop:"OutAddrMaskReps"`
}

// NETStat mirrors struct netstat (photosyst.h) with the updated icmpv4 group.
type NETStat struct {
	Ipv4   v1_26.IPv4Stats   `atop:"ipv4"`
	Icmpv4 ICMPv4Stats       `atop:"icmpv4"`
	Udpv4  v1_26.UDPv4Stats  `atop:"udpv4"`
	Ipv6   v1_26.IPv6Stats   `atop:"ipv6"`
	Icmpv6 v1_26.ICMPv6Stats `atop:"icmpv6"`
	Udpv6  v1_26.UDPv6Stats  `atop:"udpv6"`
	Tcp    v1_26.TCPStats    `atop:"tcp"`
}

// Unchanged carryovers from earlier revisions.
type (
	FreqCnt      = v1_26.FreqCnt
	PerCPU       = v2_7.PerCPU
	CPUStat      = v2_7.CPUStat
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
)

// SStat mirrors struct sstat (photosyst.h) with the LLC group added.
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
