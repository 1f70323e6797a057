package rawlog

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/pyranha-labs/atoparser/compress"
	"github.com/pyranha-labs/atoparser/errs"
	"github.com/pyranha-labs/atoparser/format"
	"github.com/pyranha-labs/atoparser/internal/options"
	"github.com/pyranha-labs/atoparser/schema"
)

// MaxSamplesPerFile caps iteration over one log. Atop writes at most one
// sample per second, so a day-long log cannot legitimately exceed it; the cap
// bounds the damage a corrupt record chain can do.
const MaxSamplesPerFile = 86400

// Sample is one fully reconstructed measurement interval.
type Sample struct {
	Record schema.Record

	// SStat holds the revision's system-statistics struct (e.g. *v2_11.SStat).
	SStat any

	// TStats holds one task-statistics struct per task active in the interval.
	TStats []any

	// CGroups pairs each cgroup chain entry with its process IDs. Nil for
	// revisions predating cgroup reporting.
	CGroups []schema.CGChainer
}

// SessionOption configures a Session during construction.
type SessionOption = options.Option[*Session]

// Session is a forward-only decoding cursor over one raw log stream. It binds
// the stream to the header resolved from it; all reads after construction are
// framed by the resolved descriptor and the per-sample records.
//
// A Session is not safe for concurrent use.
type Session struct {
	r     io.Reader
	codec compress.Decompressor

	header schema.Header
	desc   *schema.Descriptor

	strict     bool
	fallback   bool
	maxSamples int

	consumed bool
}

// NewSession resolves the log's header and prepares the stream for sample
// iteration. The reader must be positioned at the start of the log (or, with
// WithHeader, at the first record).
func NewSession(r io.Reader, opts ...SessionOption) (*Session, error) {
	codec, err := compress.GetCodec(format.CompressionZlib)
	if err != nil {
		return nil, err
	}

	session := &Session{
		r:          r,
		codec:      codec,
		fallback:   true,
		maxSamples: MaxSamplesPerFile,
	}
	if err := options.Apply(session, opts...); err != nil {
		return nil, err
	}

	if session.header == nil {
		if session.header, session.desc, err = resolveHeader(r, session.fallback); err != nil {
			return nil, err
		}

		return session, nil
	}

	// Header supplied by the caller: resolve its descriptor without re-reading.
	version := session.header.SemanticVersion()
	desc, ok := schema.Lookup(version)
	if !ok {
		if !session.fallback {
			return nil, fmt.Errorf("%w: %s", errs.ErrUnknownVersion, version)
		}

		desc = schema.Latest()
	}
	session.desc = desc

	return session, nil
}

// WithHeader resumes decoding under a previously resolved header, for streams
// whose header bytes were already consumed.
func WithHeader(header schema.Header) SessionOption {
	return options.New(func(s *Session) error {
		if header == nil {
			return errors.New("rawlog: nil header")
		}
		s.header = header

		return nil
	})
}

// WithStrictTruncation surfaces truncated sample data as an error instead of
// treating it as end of stream.
func WithStrictTruncation() SessionOption {
	return options.NoError(func(s *Session) {
		s.strict = true
	})
}

// WithoutFallback disables the forward-compatibility fallback, so a version
// with no registered schema fails with ErrUnknownVersion instead of being
// decoded under the newest known layout.
func WithoutFallback() SessionOption {
	return options.New(func(s *Session) error {
		if s.header != nil {
			return errors.New("rawlog: WithoutFallback must precede WithHeader")
		}
		s.fallback = false

		return nil
	})
}

// WithMaxSamples lowers the iteration cap below MaxSamplesPerFile.
func WithMaxSamples(n int) SessionOption {
	return options.New(func(s *Session) error {
		if n <= 0 || n > MaxSamplesPerFile {
			return fmt.Errorf("rawlog: max samples %d outside (0, %d]", n, MaxSamplesPerFile)
		}
		s.maxSamples = n

		return nil
	})
}

// Header returns the resolved log header.
func (s *Session) Header() schema.Header {
	return s.header
}

// Descriptor returns the schema descriptor decoding is running under. With the
// forward-compatibility fallback this can be newer than the header's version.
func (s *Session) Descriptor() *schema.Descriptor {
	return s.desc
}

// Version returns the semantic version declared by the log header.
func (s *Session) Version() schema.Version {
	return s.header.SemanticVersion()
}

// Samples returns a single-use iterator over the remaining samples.
//
// Iteration ends cleanly at the end-of-stream sentinel record, at end of file,
// at the sample cap, or (by default) at truncated sample data; under
// WithStrictTruncation the truncation is yielded as an error instead. Any
// yielded error ends the iteration; a second call yields ErrSessionExhausted.
func (s *Session) Samples() iter.Seq2[*Sample, error] {
	return func(yield func(*Sample, error) bool) {
		if s.consumed {
			yield(nil, errs.ErrSessionExhausted)

			return
		}
		s.consumed = true

		for decoded := 0; decoded < s.maxSamples; decoded++ {
			sample, err := s.next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				if errors.Is(err, errs.ErrTruncated) && !s.strict {
					return
				}

				yield(nil, err)

				return
			}

			if !yield(sample, nil) {
				return
			}
		}
	}
}

// next reads and reconstructs one sample. io.EOF means clean end of stream.
func (s *Session) next() (*Sample, error) {
	record, err := s.ReadRecord()
	if err != nil {
		return nil, err
	}

	sstat, err := s.ReadSStat(record)
	if err != nil {
		return nil, err
	}

	tstats, err := s.ReadTStats(record)
	if err != nil {
		return nil, err
	}

	cgroups, err := s.ReadCGroups(record)
	if err != nil {
		return nil, err
	}

	return &Sample{
		Record:  record,
		SStat:   sstat,
		TStats:  tstats,
		CGroups: cgroups,
	}, nil
}

// ReadRecord reads the next sample's record. Both the end-of-stream sentinel
// (non-positive compressed length) and a record cut short by the producer are
// reported as io.EOF, matching how atop itself terminates a log.
func (s *Session) ReadRecord() (schema.Record, error) {
	record, err := s.desc.ReadRecord(s.r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("read record: %w", err)
	}

	if record.SStatCompLen() <= 0 {
		return nil, io.EOF
	}

	return record, nil
}

// ReadSStat reads and decodes the system-statistics segment framed by record.
func (s *Session) ReadSStat(record schema.Record) (any, error) {
	buf, err := s.readSegment(record.SStatCompLen())
	if err != nil {
		return nil, err
	}

	return s.desc.DecodeSStat(buf)
}

// ReadTStats reads the task-statistics segment framed by record and partitions
// it into the record's task count.
func (s *Session) ReadTStats(record schema.Record) ([]any, error) {
	buf, err := s.readSegment(record.TStatCompLen())
	if err != nil {
		return nil, err
	}

	return partitionTStats(s.desc, buf, record.TaskCount())
}

// ReadCGroups reads the cgroup chain and pid-list segments framed by record
// and pairs them up. Returns nil for revisions without cgroup reporting.
func (s *Session) ReadCGroups(record schema.Record) ([]schema.CGChainer, error) {
	if !s.desc.HasCGroups() {
		return nil, nil
	}

	chain, err := s.readSegment(record.CStatCompLen())
	if err != nil {
		return nil, err
	}

	pids, err := s.readSegment(record.PidListCompLen())
	if err != nil {
		return nil, err
	}

	return chainCGroups(s.desc, chain, pids, record.CGroupCount())
}
