package v2_3

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
)

func init() {
	schema.Register(&schema.Descriptor{
		Version:      schema.Version{Major: 2, Minor: 3},
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
