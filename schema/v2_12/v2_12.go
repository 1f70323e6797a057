// Package v2_12 registers atop 2.12, which reused the 2.11 layout without
// modification. Only the version carried in the header differs.
package v2_12

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
	"github.com/pyranha-labs/atoparser/schema/v2_11"
)

type (
	Header = v2_11.Header
	Record = v2_11.Record
	SStat  = v2_11.SStat
	TStat  = v2_11.TStat
	CStat  = v2_11.CStat
	CGGen  = v2_11.CGGen
	CGConf = v2_11.CGConf
	CGCPU  = v2_11.CGCPU
	CGMem  = v2_11.CGMem
	CGDSK  = v2_11.CGDSK
)

func init() {
	schema.Register(&schema.Descriptor{
		Version:      schema.Version{Major: 2, Minor: 12},
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
