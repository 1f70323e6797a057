package v2_11

import "github.com/pyranha-labs/atoparser/schema"

// CGGen mirrors struct cggen (photocgroup.h). The structlen field is the
// entry's true on-disk length including the trailing variable-length cgroup
// name, so it, not the fixed struct size, frames the next entry in the chain.
type CGGen struct {
	Structlen   int32    `atop:"structlen"`
	Sequence    int32    `atop:"sequence"`
	Parentseq   int32    `atop:"parentseq"`
	Depth       int32    `atop:"depth"`
	Nprocs      int32    `atop:"nprocs"`
	Procsbelow  int32    `atop:"procsbelow"`
	Namelen     int32    `atop:"namelen"`
	Fullnamelen int32    `atop:"fullnamelen"`
	Ifuture     [4]int32 `atop:"ifuture"`
	Cfuture     [4]int64 `atop:"cfuture"`
}

// CGConf mirrors struct cgconf (photocgroup.h): configured cgroup-v2 limits,
// with -1 meaning max and -2 meaning undefined.
type CGConf struct {
	Cpuweight int32    `atop:"cpuweight"`
	Cpumax    int32    `atop:"cpumax"`
	Memmax    int64    `atop:"memmax"`
	Swpmax    int64    `atop:"swpmax"`
	Dskweight int32    `atop:"dskweight"`
	Ifuture   [5]int32 `atop:"ifuture"`
	Cfuture   [5]int64 `atop:"cfuture"`
}

// CGCPU mirrors struct cgcpu (photocgroup.h).
type CGCPU struct {
	Utime    int64    `atop:"utime"`
	Stime    int64    `atop:"stime"`
	Somepres int64    `atop:"somepres"`
	Fullpres int64    `atop:"fullpres"`
	Cfuture  [5]int64 `atop:"cfuture"`
}

// CGMem mirrors struct cgmem (photocgroup.h).
type CGMem struct {
	Current  int64    `atop:"current"`
	Anon     int64    `atop:"anon"`
	File     int64    `atop:"file"`
	Kernel   int64    `atop:"kernel"`
	Shmem    int64    `atop:"shmem"`
	Somepres int64    `atop:"somepres"`
	Fullpres int64    `atop:"fullpres"`
	Cfuture  [5]int64 `atop:"cfuture"`
}

// CGDSK mirrors struct cgdsk (photocgroup.h).
type CGDSK struct {
	Rbytes   int64    `atop:"rbytes"`
	Wbytes   int64    `atop:"wbytes"`
	Rios     int64    `atop:"rios"`
	Wios     int64    `atop:"wios"`
	Somepres int64    `atop:"somepres"`
	Fullpres int64    `atop:"fullpres"`
	Cfuture  [5]int64 `atop:"cfuture"`
}

// CStat mirrors the fixed part of struct cstat (photocgroup.h). The on-disk
// entry continues with a variable-length cgroup name that is not materialized;
// Gen.Structlen accounts for it.
type CStat struct {
	Gen  CGGen  `atop:"gen"`
	Conf CGConf `atop:"conf"`
	Cpu  CGCPU  `atop:"cpu"`
	Mem  CGMem  `atop:"mem"`
	Dsk  CGDSK  `atop:"dsk"`
}

var _ schema.CStat = (*CStat)(nil)

func (c *CStat) StructLen() int { return int(c.Gen.Structlen) }

func (c *CStat) ProcCount() int { return int(c.Gen.Nprocs) }
