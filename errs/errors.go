// Package errs defines the sentinel errors shared across the atoparser packages.
//
// Errors are declared as package-level sentinels so callers can classify failures
// with errors.Is without string matching. Errors that carry structured detail
// (FormatError) wrap the matching sentinel.
package errs

import "errors"

var (
	// ErrBadMagic indicates the stream does not start with the atop magic number.
	ErrBadMagic = errors.New("file does not contain raw atop output (wrong magic number)")

	// ErrIncompatible indicates one or more struct lengths declared in the header
	// do not match the resolved schema. The file cannot be read further.
	ErrIncompatible = errors.New("file has incompatible atop format")

	// ErrUnknownVersion indicates the on-disk version has no registered schema
	// descriptor. Only surfaced when the forward-compatibility fallback is disabled.
	ErrUnknownVersion = errors.New("unsupported atop version")

	// ErrTruncated indicates a compressed segment after the header could not be
	// fully read or inflated. Common when the producing daemon was killed mid-sample;
	// squashed into end-of-stream unless strict truncation handling is enabled.
	ErrTruncated = errors.New("truncated sample data")

	// ErrBounds indicates an array or chain decode would run past the end of its
	// decompressed buffer. Always fatal.
	ErrBounds = errors.New("decoded segment exceeds buffer bounds")

	// ErrShortBuffer indicates a buffer is smaller than the struct it should hold.
	ErrShortBuffer = errors.New("buffer too short for struct")

	// ErrSessionExhausted indicates Samples was consumed twice on the same session.
	// A session is a forward-only, single-pass cursor.
	ErrSessionExhausted = errors.New("session already consumed")
)
