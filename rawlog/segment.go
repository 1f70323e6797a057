package rawlog

import (
	"fmt"
	"io"

	"github.com/pyranha-labs/atoparser/errs"
	"github.com/pyranha-labs/atoparser/internal/cstruct"
	"github.com/pyranha-labs/atoparser/schema"
)

// readSegment reads exactly n compressed bytes and inflates them. A short read
// or inflate failure after a valid record means the producer stopped
// mid-write, so both map to ErrTruncated and the caller applies the
// truncation policy.
func (s *Session) readSegment(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative segment length %d", errs.ErrTruncated, n)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrTruncated, err)
	}

	raw, err := s.codec.Decompress(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrTruncated, err)
	}

	return raw, nil
}

// partitionTStats splits a decompressed task-statistics buffer into count
// elements of the revision's task struct size. Excess bytes past the last
// element are ignored; a buffer too short for count elements is fatal.
func partitionTStats(desc *schema.Descriptor, buf []byte, count int) ([]any, error) {
	size := desc.TStatSize
	if count < 0 || count*size > len(buf) {
		return nil, fmt.Errorf("%w: %d task entries of %d bytes in %d-byte segment",
			errs.ErrBounds, count, size, len(buf))
	}

	tstats := make([]any, 0, count)
	for i := 0; i < count; i++ {
		tstat, err := desc.DecodeTStat(buf[i*size : (i+1)*size])
		if err != nil {
			return nil, err
		}

		tstats = append(tstats, tstat)
	}

	return tstats, nil
}

// chainCGroups walks the cgroup chain and pid-list buffers in lockstep. Chain
// entries are self-describing: each advances the chain cursor by its own
// reported length (fixed struct plus trailing name) and claims its own process
// count from the pid list.
func chainCGroups(desc *schema.Descriptor, chain, pids []byte, count int) ([]schema.CGChainer, error) {
	cgroups := make([]schema.CGChainer, 0, count)

	var chainOff, pidOff int
	for i := 0; i < count; i++ {
		if chainOff+desc.CStatSize > len(chain) {
			return nil, fmt.Errorf("%w: cgroup entry at offset %d in %d-byte chain segment",
				errs.ErrBounds, chainOff, len(chain))
		}

		cstat, err := desc.DecodeCStat(chain[chainOff:])
		if err != nil {
			return nil, err
		}

		// A reported length below the fixed struct size would walk the cursor
		// backwards into the previous entry.
		if cstat.StructLen() < desc.CStatSize {
			return nil, fmt.Errorf("%w: cgroup entry reports length %d below struct size %d",
				errs.ErrBounds, cstat.StructLen(), desc.CStatSize)
		}
		chainOff += cstat.StructLen()

		nprocs := cstat.ProcCount()
		pidEnd := pidOff + nprocs*schema.PidSize
		if nprocs < 0 || pidEnd > len(pids) {
			return nil, fmt.Errorf("%w: %d pids at offset %d in %d-byte pid segment",
				errs.ErrBounds, nprocs, pidOff, len(pids))
		}

		list := make([]int32, 0, nprocs)
		for off := pidOff; off < pidEnd; off += schema.PidSize {
			pid, err := cstruct.FromBytes[int32](pids[off : off+schema.PidSize])
			if err != nil {
				return nil, err
			}

			list = append(list, *pid)
		}
		pidOff = pidEnd

		cgroups = append(cgroups, schema.CGChainer{CStat: cstat, PIDs: list})
	}

	return cgroups, nil
}
