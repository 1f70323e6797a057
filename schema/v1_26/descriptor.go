package v1_26

import (
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
)

func init() {
	schema.Register(&schema.Descriptor{
		Version:      schema.Version{Major: 1, Minor: 26},
		HeaderSize:   cstruct.SizeOf[Header](),
		RecordSize:   cstruct.SizeOf[Record](),
		SStatSize:    cstruct.SizeOf[SStat](),
		TStatSize:    cstruct.SizeOf[PStat](),
		DecodeHeader: schema.HeaderDecoder[Header](),
		ReadRecord:   schema.RecordReader[Record](),
		DecodeSStat:  schema.StatDecoder[SStat](),
		DecodeTStat:  schema.StatDecoder[PStat](),
	})
}
