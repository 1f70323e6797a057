package schema

import (
	"fmt"
	"sort"
)

var (
	descriptors  = make(map[Version]*Descriptor)
	orderedDescs []*Descriptor
)

// Register adds one revision's descriptor to the catalog, keeping the catalog
// ordered oldest to newest. Called from each version subpackage's init;
// registering the same version twice is a programming error and panics.
func Register(d *Descriptor) {
	if _, ok := descriptors[d.Version]; ok {
		panic(fmt.Sprintf("schema: version %s registered twice", d.Version))
	}

	descriptors[d.Version] = d
	orderedDescs = append(orderedDescs, d)
	sort.Slice(orderedDescs, func(i, j int) bool {
		return orderedDescs[i].Version.Less(orderedDescs[j].Version)
	})
}

// Lookup returns the descriptor registered for the exact version, if any.
func Lookup(v Version) (*Descriptor, bool) {
	d, ok := descriptors[v]

	return d, ok
}

// Latest returns the newest registered descriptor. This is both the universal
// header probe layout and the forward-compatibility fallback target.
func Latest() *Descriptor {
	if len(orderedDescs) == 0 {
		panic("schema: no versions registered; import a schema version package")
	}

	return orderedDescs[len(orderedDescs)-1]
}

// Versions returns every registered version, oldest first.
func Versions() []Version {
	versions := make([]Version, 0, len(orderedDescs))
	for _, d := range orderedDescs {
		versions = append(versions, d.Version)
	}

	return versions
}
