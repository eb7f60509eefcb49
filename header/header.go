// Package header decodes and encodes the BLF object header: the 16-byte
// base record every object (container or leaf) begins with, plus its
// optional V1 (32-byte) or V2 (40-byte) timestamp/version extension.
//
// This is the version-dispatch heart of the reader: callers never see raw
// header_version branching, only a single normalized ObjectHeader with the
// V1/V2 differences folded into nanosecond timestamps and optional fields.
package header

import (
	"fmt"

	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/errs"
	"github.com/tracebus/blf/objtype"
)

// SignatureLOBJ is the required little-endian value of the 4-byte "LOBJ"
// signature at every object's start.
const SignatureLOBJ uint32 = 0x4A424F4C

// Base header field sizes.
const (
	BaseHeaderSize = 16
	V1HeaderSize   = 32
	V2HeaderSize   = 40

	v1ExtensionSize = V1HeaderSize - BaseHeaderSize
	v2ExtensionSize = V2HeaderSize - BaseHeaderSize
)

// ObjectHeader is the normalized header every decoder receives, regardless
// of whether the wire record was a compact, V1, or V2 header.
type ObjectHeader struct {
	HeaderSize    uint16
	HeaderVersion uint16
	ObjectSize    uint32
	ObjectType    objtype.Type

	Flags        Flags
	ClientIndex  uint16
	ObjectVersion uint16

	// TimestampNs is the object timestamp normalized to nanoseconds per
	// Flags's resolution bits. This is the only timestamp surfaced to
	// decoders and consumers.
	TimestampNs uint64

	// OriginalTimestampNs and Status are populated only for V2 headers.
	OriginalTimestampNs uint64
	Status              TimestampStatus
	HasOriginalTimestamp bool

	// Salvaged is true when this was a compact (header_size==16) V1 header
	// whose extension fields were opportunistically read from trailing
	// bytes the producer mislabeled as payload.
	Salvaged bool

	// consumed is the number of bytes actually read from the cursor for
	// this header, which may exceed HeaderSize when Salvaged is true.
	consumed int
}

// PayloadSize returns the number of payload bytes remaining in this object
// after the header, i.e. ObjectSize minus the bytes actually consumed
// decoding the header. Never negative.
func (h *ObjectHeader) PayloadSize() uint32 {
	consumed := uint32(h.consumed)
	if h.ObjectSize < consumed {
		return 0
	}
	return h.ObjectSize - consumed
}

// Validate reports errs.ErrInconsistentHeader when ObjectSize is smaller
// than the declared HeaderSize — a structurally broken object whose size
// arithmetic cannot be trusted.
func (h *ObjectHeader) Validate() error {
	if h.ObjectSize < uint32(h.HeaderSize) {
		return fmt.Errorf("%w: object_size=%d header_size=%d", errs.ErrInconsistentHeader, h.ObjectSize, h.HeaderSize)
	}
	return nil
}

// String renders a short debug summary.
func (h *ObjectHeader) String() string {
	return fmt.Sprintf("ObjectHeader{type=%s version=%d size=%d ts=%dns salvaged=%v}",
		h.ObjectType, h.HeaderVersion, h.ObjectSize, h.TimestampNs, h.Salvaged)
}

// Read decodes an object header starting at c's current position,
// dispatching on header_version. The cursor is left positioned at the first
// payload byte.
func Read(c *cursor.Cursor) (*ObjectHeader, error) {
	sig, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	if sig != SignatureLOBJ {
		return nil, fmt.Errorf("%w: got 0x%08X", errs.ErrBadSignature, sig)
	}

	headerSize, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	headerVersion, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	objectSize, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	rawType, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}

	h := &ObjectHeader{
		HeaderSize:    headerSize,
		HeaderVersion: headerVersion,
		ObjectSize:    objectSize,
		ObjectType:    objtype.Type(rawType),
		consumed:      BaseHeaderSize,
	}

	switch headerVersion {
	case 1:
		if err := h.readV1(c); err != nil {
			return nil, err
		}
	case 2:
		if err := h.readV2(c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownHeaderVersion, headerVersion)
	}

	return h, nil
}

func (h *ObjectHeader) readV1(c *cursor.Cursor) error {
	switch {
	case h.HeaderSize >= V1HeaderSize:
		if err := h.readV1Extension(c); err != nil {
			return err
		}
		h.consumed = V1HeaderSize
		if pad := int(h.HeaderSize) - V1HeaderSize; pad > 0 {
			if err := c.Skip(pad); err != nil {
				return err
			}
			h.consumed += pad
		}
	case h.HeaderSize == BaseHeaderSize:
		return h.readCompactV1(c)
	default:
		// Declared header_size is smaller than any known layout; nothing
		// more to consume. Extension fields stay zero-valued.
	}
	return nil
}

// readCompactV1 implements the salvage-read contract: a header_size==16
// header whose declared object_size leaves at least 16 more bytes available
// gets those bytes opportunistically read as a V1 extension, since some
// producers misreport header_size.
func (h *ObjectHeader) readCompactV1(c *cursor.Cursor) error {
	remainingInObject := int64(h.ObjectSize) - BaseHeaderSize
	available := int64(c.Remaining())
	salvageable := remainingInObject
	if available < salvageable {
		salvageable = available
	}

	if salvageable < v1ExtensionSize {
		return nil
	}

	if err := h.readV1Extension(c); err != nil {
		return err
	}
	h.Salvaged = true
	h.consumed = V1HeaderSize
	return nil
}

func (h *ObjectHeader) readV1Extension(c *cursor.Cursor) error {
	rawFlags, err := c.ReadUint32()
	if err != nil {
		return err
	}
	clientIndex, err := c.ReadUint16()
	if err != nil {
		return err
	}
	objectVersion, err := c.ReadUint16()
	if err != nil {
		return err
	}
	rawTimestamp, err := c.ReadUint64()
	if err != nil {
		return err
	}

	h.Flags = Flags(rawFlags)
	h.ClientIndex = clientIndex
	h.ObjectVersion = objectVersion
	h.TimestampNs = h.Flags.NormalizeTimestamp(rawTimestamp)
	return nil
}

func (h *ObjectHeader) readV2(c *cursor.Cursor) error {
	rawFlags, err := c.ReadUint32()
	if err != nil {
		return err
	}
	status, err := c.ReadUint8()
	if err != nil {
		return err
	}
	if _, err := c.ReadUint8(); err != nil { // reserved
		return err
	}
	objectVersion, err := c.ReadUint16()
	if err != nil {
		return err
	}
	rawTimestamp, err := c.ReadUint64()
	if err != nil {
		return err
	}
	rawOriginal, err := c.ReadUint64()
	if err != nil {
		return err
	}

	h.Flags = Flags(rawFlags)
	h.Status = TimestampStatus(status)
	h.ObjectVersion = objectVersion
	h.TimestampNs = h.Flags.NormalizeTimestamp(rawTimestamp)
	h.OriginalTimestampNs = h.Flags.NormalizeTimestamp(rawOriginal)
	h.HasOriginalTimestamp = true
	h.consumed = V2HeaderSize

	if pad := int(h.HeaderSize) - V2HeaderSize; pad > 0 {
		if err := c.Skip(pad); err != nil {
			return err
		}
		h.consumed += pad
	}
	return nil
}
