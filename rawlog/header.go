package rawlog

import (
	"fmt"
	"io"

	"github.com/pyranha-labs/atoparser/errs"
	"github.com/pyranha-labs/atoparser/schema"
)

// Magic is the value leading every raw atop log.
const Magic uint32 = 0xfeedbeef

// resolveHeader probes the stream with the newest known header layout, then
// reinterprets the same bytes under the layout the version field selects.
//
// Every supported revision shares one header byte length, which is what makes
// the probe safe: the buffer read for the newest layout is exactly the buffer
// the resolved layout needs. When the version has no registered descriptor and
// fallback is enabled, the newest layout is kept; a layout-incompatible future
// revision then fails the size check below instead of decoding garbage.
func resolveHeader(r io.Reader, fallback bool) (schema.Header, *schema.Descriptor, error) {
	latest := schema.Latest()

	buf := make([]byte, latest.HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	probe, err := latest.DecodeHeader(buf)
	if err != nil {
		return nil, nil, err
	}

	if probe.MagicNumber() != Magic {
		return nil, nil, &errs.FormatError{Sentinel: errs.ErrBadMagic, Magic: probe.MagicNumber()}
	}

	version := probe.SemanticVersion()

	header := probe
	desc, ok := schema.Lookup(version)
	switch {
	case ok && desc != latest:
		if header, err = desc.DecodeHeader(buf); err != nil {
			return nil, nil, err
		}
	case !ok && !fallback:
		return nil, nil, fmt.Errorf("%w: %s", errs.ErrUnknownVersion, version)
	case !ok:
		desc = latest
	}

	if err := checkCompatibility(header, desc); err != nil {
		return nil, nil, err
	}

	return header, desc, nil
}

// checkCompatibility verifies every struct length the header declares against
// the sizes computed for the resolved schema. All failing claims are reported
// together so a mismatched file can be diagnosed in one pass.
func checkCompatibility(header schema.Header, desc *schema.Descriptor) error {
	var mismatches []errs.SizeMismatch
	for _, claim := range header.DeclaredSizes() {
		expected, ok := desc.ExpectedSize(claim.Name)
		if !ok || claim.Declared != expected {
			mismatches = append(mismatches, errs.SizeMismatch{
				Name:     claim.Name,
				Found:    claim.Declared,
				Expected: expected,
			})
		}
	}

	if len(mismatches) > 0 {
		return &errs.FormatError{
			Sentinel:   errs.ErrIncompatible,
			Version:    header.SemanticVersion().String(),
			Mismatches: mismatches,
		}
	}

	return nil
}
