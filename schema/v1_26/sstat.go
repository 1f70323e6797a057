package v1_26

// MemStat mirrors struct memstat (photosyst.h).
type MemStat struct {
	Physmem    int64    `atop:"physmem"`
	Freemem    int64    `atop:"freemem"`
	Buffermem  int64    `atop:"buffermem"`
	Slabmem    int64    `atop:"slabmem"`
	Cachemem   int64    `atop:"cachemem"`
	Cachedrt   int64    `atop:"cachedrt"`
	Totswap    int64    `atop:"totswap"`
	Freeswap   int64    `atop:"freeswap"`
	Pgscans    int64    `atop:"pgscans"`
	Allocstall int64    `atop:"allocstall"`
	Swouts     int64    `atop:"swouts"`
	Swins      int64    `atop:"swins"`
	Commitlim  int64    `atop:"commitlim"`
	Committed  int64    `atop:"committed"`
	Cfuture    [4]int64 `atop:"cfuture"`
}

// FreqCnt mirrors struct freqcnt (photosyst.h).
type FreqCnt struct {
	Maxfreq int64 `atop:"maxfreq"`
	Cnt     int64 `atop:"cnt"`
	Ticks   int64 `atop:"ticks"`
}

// PerCPU mirrors struct percpu (photosyst.h). The capitalized Itime and Stime
// C members (irq and softirq time) become ITime and STime to stay distinct
// from the lowercase idle and system counters.
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
	Cfuture [1]int64 `atop:"cfuture"`
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

// IPv4Stats mirrors the ipv4 SNMP counter group (netstats.h).
type IPv4Stats struct {
	Forwarding      int64 `atop:"Forwarding"`
	DefaultTTL      int64 `atop:"DefaultTTL"`
	InReceives      int64 `atop:"InReceives"`
	InHdrErrors     int64 `atop:"InHdrErrors"`
	InAddrErrors    int64 `atop:"InAddrErrors"`
	ForwDatagrams   int64 `atop:"ForwDatagrams"`
	InUnknownProtos int64 `atop:"InUnknownProtos"`
	InDiscards      int64 `atop:"InDiscards"`
	InDelivers      int64 `atop:"InDelivers"`
	OutRequests     int64 `atop:"OutRequests"`
	OutDiscards     int64 `atop:"OutDiscards"`
	OutNoRoutes     int64 `atop:"OutNoRoutes"`
	ReasmTimeout    int64 `atop:"ReasmTimeout"`
	ReasmReqds      int64 `atop:"ReasmReqds"`
	ReasmOKs        int64 `atop:"ReasmOKs"`
	ReasmFails      int64 `atop:"ReasmFails"`
	FragOKs         int64 `atop:"FragOKs"`
	FragFails       int64 `atop:"FragFails"`
	FragCreates     int64 `atop:"FragCreates"`
}

// ICMPv4Stats mirrors the icmpv4 SNMP counter group (netstats.h).
type ICMPv4Stats struct {
	InMsgs           int64 `atop:"InMsgs"`
	InErrors         int64 `atop:"InErrors"`
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

// UDPv4Stats mirrors the udpv4 SNMP counter group (netstats.h).
type UDPv4Stats struct {
	InDatagrams  int64 `atop:"InDatagrams"`
	NoPorts      int64 `atop:"NoPorts"`
	InErrors     int64 `atop:"InErrors"`
	OutDatagrams int64 `atop:"OutDatagrams"`
}

// TCPStats mirrors the tcp SNMP counter group (netstats.h).
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
}

// IPv6Stats mirrors the ipv6 SNMP counter group (netstats.h).
type IPv6Stats struct {
	Ip6InReceives       int64 `atop:"Ip6InReceives"`
	Ip6InHdrErrors      int64 `atop:"Ip6InHdrErrors"`
	Ip6InTooBigErrors   int64 `atop:"Ip6InTooBigErrors"`
	Ip6InNoRoutes       int64 `atop:"Ip6InNoRoutes"`
	Ip6InAddrErrors     int64 `atop:"Ip6InAddrErrors"`
	Ip6InUnknownProtos  int64 `atop:"Ip6InUnknownProtos"`
	Ip6InTruncatedPkts  int64 `atop:"Ip6InTruncatedPkts"`
	Ip6InDiscards       int64 `atop:"Ip6InDiscards"`
	Ip6InDelivers       int64 `atop:"Ip6InDelivers"`
	Ip6OutForwDatagrams int64 `atop:"Ip6OutForwDatagrams"`
	Ip6OutRequests      int64 `atop:"Ip6OutRequests"`
	Ip6OutDiscards      int64 `atop:"Ip6OutDiscards"`
	Ip6OutNoRoutes      int64 `atop:"Ip6OutNoRoutes"`
	Ip6ReasmTimeout     int64 `atop:"Ip6ReasmTimeout"`
	Ip6ReasmReqds       int64 `atop:"Ip6ReasmReqds"`
	Ip6ReasmOKs         int64 `atop:"Ip6ReasmOKs"`
	Ip6ReasmFails       int64 `atop:"Ip6ReasmFails"`
	Ip6FragOKs          int64 `atop:"Ip6FragOKs"`
	Ip6FragFails        int64 `atop:"Ip6FragFails"`
	Ip6FragCreates      int64 `atop:"Ip6FragCreates"`
	Ip6InMcastPkts      int64 `atop:"Ip6InMcastPkts"`
	Ip6OutMcastPkts     int64 `atop:"Ip6OutMcastPkts"`
}

// ICMPv6Stats mirrors the icmpv6 SNMP counter group (netstats.h).
type ICMPv6Stats struct {
	Icmp6InMsgs                    int64 `atop:"Icmp6InMsgs"`
	Icmp6InErrors                  int64 `atop:"Icmp6InErrors"`
	Icmp6InDestUnreachs            int64 `atop:"Icmp6InDestUnreachs"`
	Icmp6InPktTooBigs              int64 `atop:"Icmp6InPktTooBigs"`
	Icmp6InTimeExcds               int64 `atop:"Icmp6InTimeExcds"`
	Icmp6InParmProblems            int64 `atop:"Icmp6InParmProblems"`
	Icmp6InEchos                   int64 `atop:"Icmp6InEchos"`
	Icmp6InEchoReplies             int64 `atop:"Icmp6InEchoReplies"`
	Icmp6InGroupMembQueries        int64 `atop:"Icmp6InGroupMembQueries"`
	Icmp6InGroupMembResponses      int64 `atop:"Icmp6InGroupMembResponses"`
	Icmp6InGroupMembReductions     int64 `atop:"Icmp6InGroupMembReductions"`
	Icmp6InRouterSolicits          int64 `atop:"Icmp6InRouterSolicits"`
	Icmp6InRouterAdvertisements    int64 `atop:"Icmp6InRouterAdvertisements"`
	Icmp6InNeighborSolicits        int64 `atop:"Icmp6InNeighborSolicits"`
	Icmp6InNeighborAdvertisements  int64 `atop:"Icmp6InNeighborAdvertisements"`
	Icmp6InRedirects               int64 `atop:"Icmp6InRedirects"`
	Icmp6OutMsgs                   int64 `atop:"Icmp6OutMsgs"`
	Icmp6OutDestUnreachs           int64 `atop:"Icmp6OutDestUnreachs"`
	Icmp6OutPktTooBigs             int64 `atop:"Icmp6OutPktTooBigs"`
	Icmp6OutTimeExcds              int64 `atop:"Icmp6OutTimeExcds"`
	Icmp6OutParmProblems           int64 `atop:"Icmp6OutParmProblems"`
	Icmp6OutEchoReplies            int64 `atop:"Icmp6OutEchoReplies"`
	Icmp6OutRouterSolicits         int64 `atop:"Icmp6OutRouterSolicits"`
	Icmp6OutNeighborSolicits       int64 `atop:"Icmp6OutNeighborSolicits"`
	Icmp6OutNeighborAdvertisements int64 `atop:"Icmp6OutNeighborAdvertisements"`
	Icmp6OutRedirects              int64 `atop:"Icmp6OutRedirects"`
	Icmp6OutGroupMembResponses     int64 `atop:"Icmp6OutGroupMembResponses"`
	Icmp6OutGroupMembReductions    int64 `atop:"Icmp6OutGroupMembReductions"`
}

// UDPv6Stats mirrors the udpv6 SNMP counter group (netstats.h).
type UDPv6Stats struct {
	Udp6InDatagrams  int64 `atop:"Udp6InDatagrams"`
	Udp6NoPorts      int64 `atop:"Udp6NoPorts"`
	Udp6InErrors     int64 `atop:"Udp6InErrors"`
	Udp6OutDatagrams int64 `atop:"Udp6OutDatagrams"`
}

// NETStat mirrors struct netstat (photosyst.h).
type NETStat struct {
	Ipv4   IPv4Stats   `atop:"ipv4"`
	Icmpv4 ICMPv4Stats `atop:"icmpv4"`
	Udpv4  UDPv4Stats  `atop:"udpv4"`
	Ipv6   IPv6Stats   `atop:"ipv6"`
	Icmpv6 ICMPv6Stats `atop:"icmpv6"`
	Udpv6  UDPv6Stats  `atop:"udpv6"`
	Tcp    TCPStats    `atop:"tcp"`
}

// PerDSK mirrors struct perdsk (photosyst.h).
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

// DSKStat mirrors struct dskstat (photosyst.h): regular disks, multiple
// devices, and logical volumes share the per-disk layout.
type DSKStat struct {
	Ndsk int32          `atop:"ndsk"`
	Nmdd int32          `atop:"nmdd"`
	Nlvm int32          `atop:"nlvm"`
	Dsk  [MaxDsk]PerDSK `atop:"dsk,limiter=ndsk"`
	Mdd  [MaxMdd]PerDSK `atop:"mdd,limiter=nmdd"`
	Lvm  [MaxLvm]PerDSK `atop:"lvm,limiter=nlvm"`
}

// PerIntf mirrors struct perintf (photosyst.h).
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
	Speed    int64    `atop:"speed"`
	Duplex   byte     `atop:"duplex"`
	Cfuture  [4]int64 `atop:"cfuture"`
}

// IntfStat mirrors struct intfstat (photosyst.h).
type IntfStat struct {
	Nrintf int32            `atop:"nrintf"`
	Intf   [MaxIntf]PerIntf `atop:"intf,limiter=nrintf"`
}

// WWWStat mirrors struct wwwstat (photosyst.h).
type WWWStat struct {
	Accesses  int64 `atop:"accesses"`
	Totkbytes int64 `atop:"totkbytes"`
	Uptime    int64 `atop:"uptime"`
	Bworkers  int32 `atop:"bworkers"`
	Iworkers  int32 `atop:"iworkers"`
}

// SStat mirrors struct sstat (photosyst.h), the system-wide statistics
// snapshot compressed after every record.
type SStat struct {
	Cpu  CPUStat  `atop:"cpu"`
	Mem  MemStat  `atop:"mem"`
	Net  NETStat  `atop:"net"`
	Intf IntfStat `atop:"intf"`
	Dsk  DSKStat  `atop:"dsk"`
	Www  WWWStat  `atop:"www"`
}
