package errs

import (
	"fmt"
	"strings"
)

// SizeMismatch records one struct whose length declared in the header differs
// from the size computed for the resolved schema.
type SizeMismatch struct {
	Name     string
	Found    int
	Expected int
}

func (m SizeMismatch) String() string {
	return fmt.Sprintf("(%s, found %d, expected %d)", m.Name, m.Found, m.Expected)
}

// FormatError is the fatal, header-stage error: the file is not a readable atop
// log under the resolved schema. It wraps either ErrBadMagic or ErrIncompatible,
// and for size mismatches lists every offending struct, not just the first.
type FormatError struct {
	// Sentinel is ErrBadMagic or ErrIncompatible.
	Sentinel error

	// Magic is the magic number found in the stream. Only set for ErrBadMagic.
	Magic uint32

	// Version is the resolved semantic version. Only set for ErrIncompatible.
	Version string

	// Mismatches lists all struct length evaluations that failed.
	Mismatches []SizeMismatch
}

func (e *FormatError) Error() string {
	if e.Sentinel == ErrBadMagic {
		return fmt.Sprintf("%v: %#x", ErrBadMagic, e.Magic)
	}

	evals := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		evals = append(evals, m.String())
	}

	return fmt.Sprintf("%v: struct length evaluations for version %s (type, found, expected): %s",
		ErrIncompatible, e.Version, strings.Join(evals, ", "))
}

// Unwrap exposes the underlying sentinel for errors.Is classification.
func (e *FormatError) Unwrap() error {
	return e.Sentinel
}
