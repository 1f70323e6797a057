package schema

import "fmt"

// Version is the semantic "major.minor" identity of one on-disk schema
// revision. Atop maintenance releases (e.g. 2.3.1) never change the layout, so
// the patch level is deliberately absent.
type Version struct {
	Major int
	Minor int
}

// VersionOf unpacks the version field stored in a raw header: the high byte
// holds the major version (top bit masked off), the low byte the minor.
func VersionOf(aversion uint16) Version {
	return Version{
		Major: int((aversion >> 8) & 0x7f),
		Minor: int(aversion & 0xff),
	}
}

// Aversion packs the version back into its on-disk representation.
func (v Version) Aversion() uint16 {
	return uint16(v.Major)<<8 | uint16(v.Minor&0xff)
}

// AtLeast reports whether this version is the given revision or newer.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}

	return v.Minor >= minor
}

// Less orders versions numerically by major, then minor.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}

	return v.Minor < other.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
