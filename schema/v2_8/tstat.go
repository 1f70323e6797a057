package v2_8

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v1_26"
	"github.com/pyranha-labs/atoparser/schema/v2_3"
	"github.com/pyranha-labs/atoparser/schema/v2_4"
)

// Gen mirrors struct gen (photoproc.h), extended with the cgroup path.
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
	Ctid        int32                  `atop:"ctid"`
	Vpid        int32                  `atop:"vpid"`
	Wasinactive int32                  `atop:"wasinactive"`
	Container   [16]byte               `atop:"container"`
	Cgpath      [CGrLen]byte           `atop:"cgpath"`
}

// CPU mirrors struct cpu (photoproc.h), extended with cgroup CPU limits and
// block I/O delay since 2.6.
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
	Cfuture     [3]int64 `atop:"cfuture"`
}

// MEM mirrors struct mem (photoproc.h), extended with cgroup memory and swap
// limits since 2.6.
type MEM struct {
	Minflt    int64    `atop:"minflt"`
	Majflt    int64    `atop:"majflt"`
	Vexec     int64    `atop:"vexec"`
	Vmem      int64    `atop:"vmem"`
	Rmem      int64    `atop:"rmem"`
	Pmem      int64    `atop:"pmem"`
	Vgrow     int64    `atop:"vgrow"`
	Rgrow     int64    `atop:"rgrow"`
	Vdata     int64    `atop:"vdata"`
	Vstack    int64    `atop:"vstack"`
	Vlibs     int64    `atop:"vlibs"`
	Vswap     int64    `atop:"vswap"`
	Vlock     int64    `atop:"vlock"`
	Cgmemmax  int64    `atop:"cgmemmax"`
	Cgmemmaxr int64    `atop:"cgmemmaxr"`
	Cgswpmax  int64    `atop:"cgswpmax"`
	Cgswpmaxr int64    `atop:"cgswpmaxr"`
	Cfuture   [3]int64 `atop:"cfuture"`
}

// Per-task carryovers from earlier revisions.
type (
	DSK = v1_26.DSK
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
		Version:      schema.Version{Major: 2, Minor: 8},
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
