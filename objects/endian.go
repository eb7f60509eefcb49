package objects

import "github.com/tracebus/blf/endian"

// le is the shared little-endian engine used by this package's Encode*
// helpers, which build raw body bytes for round-trip test fixtures.
var le = endian.LittleEndian
