// Package container implements the LogContainer engine: it unwraps the
// outer compressed envelope that wraps every batch of inner BLF objects,
// and hands back the inflated bytes in a pooled buffer, ready for the
// inner object-parsing loop.
package container

import (
	"fmt"

	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/errs"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/internal/pool"
)

// fieldsSize is the size, in bytes, of the container-specific fields that
// follow the base object header: compression_method, reserved1, reserved2,
// uncompressed_size, reserved3.
const fieldsSize = 16

// LogContainer describes one outer container object: its header and the
// container-specific fields read by Read. The compressed payload itself is
// read later, by Inflate.
type LogContainer struct {
	Header           *header.ObjectHeader
	CompressionMethod Method
	UncompressedSize  uint32
}

// Read decodes a LogContainer's container-specific fields from c, which must
// be positioned immediately after h's base header (i.e. at the start of
// compression_method). It does not yet inflate the payload.
func Read(c *cursor.Cursor, h *header.ObjectHeader) (*LogContainer, error) {
	method, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved1
		return nil, err
	}
	if _, err := c.ReadUint32(); err != nil { // reserved2
		return nil, err
	}
	uncompressedSize, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	if _, err := c.ReadUint32(); err != nil { // reserved3
		return nil, err
	}

	return &LogContainer{
		Header:            h,
		CompressionMethod: Method(method),
		UncompressedSize:  uncompressedSize,
	}, nil
}

// Inflate decompresses the container's payload (the bytes of c remaining
// after LogContainer's own fields, up to payloadSize) into a pooled scratch
// buffer. Callers must call pool.PutContainerBuffer on the result once they
// are done iterating its inner objects.
func (lc *LogContainer) Inflate(c *cursor.Cursor, payloadSize uint32) (*pool.ByteBuffer, error) {
	if payloadSize < fieldsSize {
		return nil, fmt.Errorf("%w: container payload_size=%d smaller than fixed fields", errs.ErrBadContainer, payloadSize)
	}
	compressedLen := int(payloadSize) - fieldsSize

	payload, err := c.ReadBytes(compressedLen)
	if err != nil {
		return nil, err
	}

	return inflate(lc.CompressionMethod, payload, lc.UncompressedSize)
}
