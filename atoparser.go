// Package atoparser decodes the binary logs written by the atop performance
// monitor.
//
// A raw atop log is a versioned header followed by a stream of samples, each a
// fixed record plus zlib-compressed struct segments. Eleven schema revisions
// are supported, atop 1.26 through 2.12; the revision is resolved from the
// header and every subsequent read runs under that revision's layout.
//
// # Basic Usage
//
// Decoding a log into projected samples:
//
//	import "github.com/pyranha-labs/atoparser"
//
//	file, _ := reader.Open("/var/log/atop/atop_20260824")
//	defer file.Close()
//
//	samples, _ := atoparser.GenerateStatistics(file)
//	for sample, err := range samples {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(atoparser.StructToMap(sample.SStat))
//	}
//
// Reading only the header:
//
//	header, _ := atoparser.GetHeader(file)
//	fmt.Println(header.SemanticVersion(), header.HostName())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the rawlog
// package, simplifying the most common use cases. For stepwise decoding and
// fine-grained control, use the rawlog package directly:
//
//   - rawlog: the decoding engine (sessions, samples, projection)
//   - schema, schema/v*: per-revision struct layouts and the version catalog
//   - reader: log file opening with transparent gzip unwrapping
//   - compress: the codecs used for segment inflation and output recompression
package atoparser

import (
	"io"
	"iter"

	"github.com/pyranha-labs/atoparser/rawlog"
	"github.com/pyranha-labs/atoparser/schema"
)

// Sample is one fully reconstructed measurement interval.
type Sample = rawlog.Sample

// SessionOption configures decoding; see the rawlog With* options.
type SessionOption = rawlog.SessionOption

// Mapping is the ordered string-keyed mapping produced by StructToMap.
type Mapping = rawlog.Mapping

// GetHeader reads and resolves the leading header of a raw atop log. The
// reader is left positioned at the first record, ready for a session built
// with rawlog.WithHeader.
func GetHeader(r io.Reader, opts ...SessionOption) (schema.Header, error) {
	session, err := rawlog.NewSession(r, opts...)
	if err != nil {
		return nil, err
	}

	return session.Header(), nil
}

// GenerateStatistics resolves the log header and returns a lazy single-use
// iterator over every sample in the stream.
func GenerateStatistics(r io.Reader, opts ...SessionOption) (iter.Seq2[*Sample, error], error) {
	session, err := rawlog.NewSession(r, opts...)
	if err != nil {
		return nil, err
	}

	return session.Samples(), nil
}

// StructToMap projects a decoded struct into an ordered mapping keyed by the
// original C field names.
func StructToMap(v any) *Mapping {
	return rawlog.StructToMap(v)
}
