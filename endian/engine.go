// Package endian provides the byte-order engine used by the cursor package.
//
// BLF is strictly little-endian on the wire, so this package exposes a
// single concrete engine rather than the bidirectional abstraction a
// format-agnostic encoder would need. Keeping it as its own package
// (instead of inlining binary.LittleEndian calls in cursor) separates "byte
// order" from "cursor position" as independent, separately testable
// concerns.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface: the cursor package reads through its UintN methods, and
// the test-fixture encoders use both the PutUintN-into-slice and
// AppendUintN-to-slice forms.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian is the sole byte-order engine used to decode and encode BLF
// wire data.
var LittleEndian Engine = binary.LittleEndian
