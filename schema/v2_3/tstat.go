package v2_3

import "github.com/pyranha-labs/atoparser/schema/v1_26"

// Gen mirrors struct gen (photoproc.h), extended with thread group, container,
// and virtual pid identity since 1.26.
type Gen struct {
	Tgid        int32             `atop:"tgid"`
	Pid         int32             `atop:"pid"`
	Ppid        int32             `atop:"ppid"`
	Ruid        int32             `atop:"ruid"`
	Euid        int32             `atop:"euid"`
	Suid        int32             `atop:"suid"`
	Fsuid       int32             `atop:"fsuid"`
	Rgid        int32             `atop:"rgid"`
	Egid        int32             `atop:"egid"`
	Sgid        int32             `atop:"sgid"`
	Fsgid       int32             `atop:"fsgid"`
	Nthr        int32             `atop:"nthr"`
	Name        [PNamLen + 1]byte `atop:"name"`
	Isproc      byte              `atop:"isproc"`
	State       byte              `atop:"state"`
	Excode      int32             `atop:"excode"`
	Btime       int64             `atop:"btime"`
	Elaps       int64             `atop:"elaps"`
	Cmdline     [CmdLen + 1]byte  `atop:"cmdline"`
	Nthrslpi    int32             `atop:"nthrslpi"`
	Nthrslpu    int32             `atop:"nthrslpu"`
	Nthrrun     int32             `atop:"nthrrun"`
	Ctid        int32             `atop:"ctid"`
	Vpid        int32             `atop:"vpid"`
	Wasinactive int32             `atop:"wasinactive"`
	Container   [16]byte          `atop:"container"`
}

// CPU and DSK carry over unchanged from 1.26.
type (
	CPU = v1_26.CPU
	DSK = v1_26.DSK
)

// MEM mirrors struct mem (photoproc.h); the 2.x layout tracks virtual memory
// segments instead of the 1.26 shared-text counter.
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
	Cfuture [4]int64 `atop:"cfuture"`
}

// NET mirrors struct net (photoproc.h); the raw socket counters of 1.26 are
// retired into generic availability slots.
type NET struct {
	Tcpsnd  int64    `atop:"tcpsnd"`
	Tcpssz  int64    `atop:"tcpssz"`
	Tcprcv  int64    `atop:"tcprcv"`
	Tcprsz  int64    `atop:"tcprsz"`
	Udpsnd  int64    `atop:"udpsnd"`
	Udpssz  int64    `atop:"udpssz"`
	Udprcv  int64    `atop:"udprcv"`
	Udprsz  int64    `atop:"udprsz"`
	Avail1  int64    `atop:"avail1"`
	Avail2  int64    `atop:"avail2"`
	Cfuture [4]int64 `atop:"cfuture"`
}

// TStat mirrors struct tstat (photoproc.h).
type TStat struct {
	Gen Gen `atop:"gen"`
	Cpu CPU `atop:"cpu"`
	Dsk DSK `atop:"dsk"`
	Mem MEM `atop:"mem"`
	Net NET `atop:"net"`
}
