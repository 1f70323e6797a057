package v2_3

import "github.com/pyranha-labs/atoparser/schema/v1_26"

// MemStat mirrors struct memstat (photosyst.h), extended with shared memory,
// huge page, and balloon counters since 1.26.
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
	Cfuture      [8]int64 `atop:"cfuture"`
}

// FreqCnt carries over unchanged from 1.26.
type FreqCnt = v1_26.FreqCnt

// PerCPU mirrors struct percpu (photosyst.h); the trailing reserve grew from
// one to four counters since 1.26.
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
	Cfuture [4]int64 `atop:"cfuture"`
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

// PerDSK mirrors struct perdsk (photosyst.h); layout matches 1.26 but the
// device arrays it lives in grew, so it is redeclared against this package's
// capacity limits.
type PerDSK struct {
	Name    [MaxDkNam]byte `atop:"name"`
	Nread   int64          `atop:"nread"`
	Nrsect  int64          `atop:"nrsect"`
	Nwrite  int64          `atop:"nwrite"`
	Nwsect  int64          `atop:"nwsect"`
	IoMs    int64          `atop:"io_ms"`
	Avque   int64          `atop:"avque"`
	Cfuture [4]int64       `atop:"cfuture"`
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

// PerIntf mirrors struct perintf (photosyst.h), extended with the interface
// type and configured speed since 1.26.
type PerIntf struct {
	Name     [16]byte `atop:"name"`
	Rbyte    int64    `atop:"rbyte"`
	Rpack    int64    `atop:"rpack"`
	Rerrs    int64    `atop:"rerrs"`
	Rdrop    int64    `atop:"rdrop"`
	Rfifo    int64    `atop:"rfifo"`
	Rframe   int64    `atop:"rframe"`
	Rcompr   int64    `atop:"rcompr"`
	Rmultic  int64    `atop:"rmultic"`
	Rfuture  [4]int64 `atop:"rfuture"`
	Sbyte    int64    `atop:"sbyte"`
	Spack    int64    `atop:"spack"`
	Serrs    int64    `atop:"serrs"`
	Sdrop    int64    `atop:"sdrop"`
	Sfifo    int64    `atop:"sfifo"`
	Scollis  int64    `atop:"scollis"`
	Scarrier int64    `atop:"scarrier"`
	Scompr   int64    `atop:"scompr"`
	Sfuture  [4]int64 `atop:"sfuture"`
	Type     byte     `atop:"type"`
	Speed    int64    `atop:"speed"`
	Speedp   int64    `atop:"speedp"`
	Duplex   byte     `atop:"duplex"`
	Cfuture  [4]int64 `atop:"cfuture"`
}

// IntfStat mirrors struct intfstat (photosyst.h).
type IntfStat struct {
	Nrintf int32            `atop:"nrintf"`
	Intf   [MaxIntf]PerIntf `atop:"intf,limiter=nrintf"`
}

// PerNFSMount mirrors struct pernfsmount (photosyst.h).
type PerNFSMount struct {
	Mountdev      [128]byte `atop:"mountdev"`
	Age           int64     `atop:"age"`
	Bytesread     int64     `atop:"bytesread"`
	Byteswrite    int64     `atop:"byteswrite"`
	Bytesdread    int64     `atop:"bytesdread"`
	Bytesdwrite   int64     `atop:"bytesdwrite"`
	Bytestotread  int64     `atop:"bytestotread"`
	Bytestotwrite int64     `atop:"bytestotwrite"`
	Pagesmread    int64     `atop:"pagesmread"`
	Pagesmwrite   int64     `atop:"pagesmwrite"`
	Future        [8]int64  `atop:"future"`
}

// Server mirrors the NFS server counter group (photosyst.h).
type Server struct {
	Netcnt    int64    `atop:"netcnt"`
	Netudpcnt int64    `atop:"netudpcnt"`
	Nettcpcnt int64    `atop:"nettcpcnt"`
	Nettcpcon int64    `atop:"nettcpcon"`
	Rpccnt    int64    `atop:"rpccnt"`
	Rpcbadfmt int64    `atop:"rpcbadfmt"`
	Rpcbadaut int64    `atop:"rpcbadaut"`
	Rpcbadcln int64    `atop:"rpcbadcln"`
	Rpcread   int64    `atop:"rpcread"`
	Rpcwrite  int64    `atop:"rpcwrite"`
	Rchits    int64    `atop:"rchits"`
	Rcmiss    int64    `atop:"rcmiss"`
	Rcnoca    int64    `atop:"rcnoca"`
	Nrbytes   int64    `atop:"nrbytes"`
	Nwbytes   int64    `atop:"nwbytes"`
	Future    [8]int64 `atop:"future"`
}

// Client mirrors the NFS client counter group (photosyst.h).
type Client struct {
	Rpccnt        int64    `atop:"rpccnt"`
	Rpcretrans    int64    `atop:"rpcretrans"`
	Rpcautrefresh int64    `atop:"rpcautrefresh"`
	Rpcread       int64    `atop:"rpcread"`
	Rpcwrite      int64    `atop:"rpcwrite"`
	Future        [8]int64 `atop:"future"`
}

// NFSMounts mirrors struct nfsmounts (photosyst.h).
type NFSMounts struct {
	Nrmounts int32                    `atop:"nrmounts"`
	Nfsmnt   [MaxNFSMount]PerNFSMount `atop:"nfsmnt,limiter=nrmounts"`
}

// NFSStat mirrors struct nfsstat (photosyst.h).
type NFSStat struct {
	Server    Server    `atop:"server"`
	Client    Client    `atop:"client"`
	Nfsmounts NFSMounts `atop:"nfsmounts"`
}

// PerContainer mirrors struct percontainer (photosyst.h).
type PerContainer struct {
	Ctid      uint64 `atop:"ctid"`
	Numproc   uint64 `atop:"numproc"`
	System    int64  `atop:"system"`
	User      int64  `atop:"user"`
	Nice      int64  `atop:"nice"`
	Uptime    int64  `atop:"uptime"`
	Physpages int64  `atop:"physpages"`
}

// ContStat mirrors struct contstat (photosyst.h).
type ContStat struct {
	Nrcontainer int32                      `atop:"nrcontainer"`
	Cont        [MaxContainer]PerContainer `atop:"cont,limiter=nrcontainer"`
}

// SNMP counter groups carry over unchanged from 1.26.
type (
	IPv4Stats   = v1_26.IPv4Stats
	ICMPv4Stats = v1_26.ICMPv4Stats
	UDPv4Stats  = v1_26.UDPv4Stats
	TCPStats    = v1_26.TCPStats
	IPv6Stats   = v1_26.IPv6Stats
	ICMPv6Stats = v1_26.ICMPv6Stats
	UDPv6Stats  = v1_26.UDPv6Stats
	NETStat     = v1_26.NETStat
	WWWStat     = v1_26.WWWStat
)

// SStat mirrors struct sstat (photosyst.h) with the NFS and container groups
// added since 1.26.
type SStat struct {
	Cpu  CPUStat  `atop:"cpu"`
	Mem  MemStat  `atop:"mem"`
	Net  NETStat  `atop:"net"`
	Intf IntfStat `atop:"intf"`
	Dsk  DSKStat  `atop:"dsk"`
	Nfs  NFSStat  `atop:"nfs"`
	Cfs  ContStat `atop:"cfs"`
	Www  WWWStat  `atop:"www"`
}
