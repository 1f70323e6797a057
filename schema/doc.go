// Package schema catalogs the on-disk struct layouts of every supported atop
// raw-log revision.
//
// Each revision lives in its own subpackage (v1_26 through v2_12) holding the
// Go mirrors of that revision's C structs and a Descriptor bundling their sizes
// and decode functions. Revisions whose C layout did not change reuse the
// earlier revision's types through aliasing, so structural identity is shared
// rather than copied; two descriptors may legitimately point at the same
// substructure type.
//
// Subpackages register their Descriptor during init. The registry is immutable
// once package initialization completes and is safe to share across any number
// of concurrent decoding sessions.
package schema
