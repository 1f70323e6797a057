package v1_26

// Gen mirrors struct gen (photoproc.h).
type Gen struct {
	Pid      int32            `atop:"pid"`
	Ppid     int32            `atop:"ppid"`
	Ruid     int32            `atop:"ruid"`
	Euid     int32            `atop:"euid"`
	Suid     int32            `atop:"suid"`
	Fsuid    int32            `atop:"fsuid"`
	Rgid     int32            `atop:"rgid"`
	Egid     int32            `atop:"egid"`
	Sgid     int32            `atop:"sgid"`
	Fsgid    int32            `atop:"fsgid"`
	Nthr     int32            `atop:"nthr"`
	Name     [PNamLen + 1]byte `atop:"name"`
	State    byte             `atop:"state"`
	Excode   int32            `atop:"excode"`
	Btime    int64            `atop:"btime"`
	Elaps    int64            `atop:"elaps"`
	Cmdline  [CmdLen + 1]byte `atop:"cmdline"`
	Nthrslpi int32            `atop:"nthrslpi"`
	Nthrslpu int32            `atop:"nthrslpu"`
	Nthrrun  int32            `atop:"nthrrun"`
	Ifuture  [1]int32         `atop:"ifuture"`
}

// CPU mirrors struct cpu (photoproc.h).
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
	Cfuture  [4]int64 `atop:"cfuture"`
}

// DSK mirrors struct dsk (photoproc.h).
type DSK struct {
	Rio     int64    `atop:"rio"`
	Rsz     int64    `atop:"rsz"`
	Wio     int64    `atop:"wio"`
	Wsz     int64    `atop:"wsz"`
	Cwsz    int64    `atop:"cwsz"`
	Cfuture [4]int64 `atop:"cfuture"`
}

// MEM mirrors struct mem (photoproc.h).
type MEM struct {
	Minflt  int64    `atop:"minflt"`
	Majflt  int64    `atop:"majflt"`
	Shtext  int64    `atop:"shtext"`
	Vmem    int64    `atop:"vmem"`
	Rmem    int64    `atop:"rmem"`
	Vgrow   int64    `atop:"vgrow"`
	Rgrow   int64    `atop:"rgrow"`
	Cfuture [4]int64 `atop:"cfuture"`
}

// NET mirrors struct net (photoproc.h).
type NET struct {
	Tcpsnd  int64    `atop:"tcpsnd"`
	Tcpssz  int64    `atop:"tcpssz"`
	Tcprcv  int64    `atop:"tcprcv"`
	Tcprsz  int64    `atop:"tcprsz"`
	Udpsnd  int64    `atop:"udpsnd"`
	Udpssz  int64    `atop:"udpssz"`
	Udprcv  int64    `atop:"udprcv"`
	Udprsz  int64    `atop:"udprsz"`
	Rawsnd  int64    `atop:"rawsnd"`
	Rawrcv  int64    `atop:"rawrcv"`
	Cfuture [4]int64 `atop:"cfuture"`
}

// PStat mirrors struct pstat (photoproc.h), the 1.26 per-process record.
// Later revisions rename it to tstat without changing its role.
type PStat struct {
	Gen Gen `atop:"gen"`
	Cpu CPU `atop:"cpu"`
	Dsk DSK `atop:"dsk"`
	Mem MEM `atop:"mem"`
	Net NET `atop:"net"`
}
