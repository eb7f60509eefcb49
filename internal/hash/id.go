// Package hash provides the xxHash64 helpers the reader uses to deduplicate
// recurring Diagnostics (a condition that repeats verbatim at many offsets
// would otherwise emit one diagnostic per occurrence) and to fingerprint a
// decoded object sequence.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of data, used for content fingerprinting.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fingerprint returns a stable key for a diagnostic at the given kind and
// context, ignoring offset, so repeated occurrences of the same condition
// (e.g. "unknown object type 0x2a" appearing at a thousand offsets) collapse
// to one dedup bucket.
func Fingerprint(kind, context string) uint64 {
	var buf [256]byte
	b := buf[:0]
	b = append(b, kind...)
	b = append(b, '\x00')
	b = append(b, context...)
	return xxhash.Sum64(b)
}
